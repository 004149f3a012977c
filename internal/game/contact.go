package game

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neural-canvas/internal/contact"
	"github.com/iburimskiy/neural-canvas/internal/notify"
)

const contactTimeout = 20 * time.Second

// startContact collects a message through dialogs and submits it in the
// background. Only one flow runs at a time.
func (g *Game) startContact() {
	if !g.contact.Enabled() {
		g.notices.Show("Write to "+g.cfg.ContactEmail, notify.Info)
		return
	}
	if !g.contactRunning.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer g.contactRunning.Store(false)

		msg, err := askMessage()
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		if err != nil {
			log.Printf("contact dialog: %v", err)
			g.notices.Show("Error sending message.", notify.Failure)
			return
		}
		if err := msg.Validate(); err != nil {
			g.notices.Show("Something went wrong: "+err.Error(), notify.Failure)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), contactTimeout)
		defer cancel()
		g.notices.Show(submitResult(g.contact.Submit(ctx, msg)))
	}()
}

// submitResult maps a submission outcome to the notification shown for it.
func submitResult(err error) (string, notify.Kind) {
	switch {
	case err == nil:
		return "Message sent successfully!", notify.Success
	case errors.Is(err, contact.ErrRejected):
		log.Printf("contact: %v", err)
		return "Something went wrong.", notify.Failure
	default:
		log.Printf("contact: %v", err)
		return "Error sending message.", notify.Failure
	}
}

func askMessage() (contact.Message, error) {
	var m contact.Message
	var err error
	if m.Name, err = zenity.Entry("Your name:", zenity.Title("Contact")); err != nil {
		return m, err
	}
	if m.Email, err = zenity.Entry("Your email:", zenity.Title("Contact")); err != nil {
		return m, err
	}
	if m.Message, err = zenity.Entry("Message:", zenity.Title("Contact")); err != nil {
		return m, err
	}
	return m, nil
}

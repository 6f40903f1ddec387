package sections

import (
	"time"

	"github.com/18gaurav2021/portfolio/internal/contact"
	"github.com/18gaurav2021/portfolio/internal/content"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

type ContactData struct {
	Heading    string
	Subheading string
	Methods    []content.ContactMethod
	Social     []content.Link
	Form       FormView
}

// FormView is the contact form as rendered: field values, the
// acknowledgement, and when the browser should ask again.
type FormView struct {
	Form      contact.Form
	Submitted bool
	Thanks    string
	// PollAfter is the remaining acknowledgement time in milliseconds.
	PollAfter int64
	// Rev tags field edits so ones made before a submit can be dropped.
	Rev uint64
}

// Button is the submit button label.
func (f FormView) Button() string {
	if f.Submitted {
		return "Message Sent!"
	}
	return "Send Message"
}

// NewFormView renders snap as of now.
func NewFormView(snap contact.Snapshot, now time.Time) FormView {
	v := FormView{Form: snap.Form, Submitted: snap.Submitted, Thanks: content.ContactThanks, Rev: snap.Rev}
	if snap.Submitted {
		v.PollAfter = max(1, snap.Remaining(now).Milliseconds())
	}
	return v
}

func contactSection() *Section {
	t := Timing{
		Threshold:    0.3,
		Stagger:      100 * time.Millisecond,
		ItemY:        20,
		ItemDuration: 600 * time.Millisecond,
	}
	grid := t.container("grid").Append(t.item("methods"), t.item("form"))

	return &Section{
		ID:       "contact",
		Template: "contact",
		Options:  t.options(),
		seq:      reveal.NewSequencer(root(heading(), grid)),
		data: func(env Env) any {
			social := content.SocialLinks()
			return ContactData{
				Heading:    content.ContactHeading,
				Subheading: content.ContactSubheading,
				Methods:    content.ContactMethods(),
				Social:     social[:2],
				Form:       NewFormView(env.Contact, env.Now),
			}
		},
	}
}

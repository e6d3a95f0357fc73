package rendering

import (
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// LongDate formats an ISO date as "January 2, 2006". Values that do not
// parse are shown as given.
func LongDate(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

func coverLetter(t Template, cl types.CoverLetterData, pi types.PersonalInfo) *Node {
	return El("div", "cover-letter "+string(t.ID()),
		t.coverLetterHeader(pi),
		El("div", "letter",
			El("div", "meta",
				TextEl("p", "date", LongDate(cl.Date)),
				El("div", "recipient",
					TextEl("p", "recipient-name strong", cl.Recipient.Name),
					TextEl("p", "recipient-title", cl.Recipient.Title),
					TextEl("p", "recipient-company", cl.Recipient.Company),
					TextEl("p", "recipient-address pre-line", cl.Recipient.Address),
				),
			),
			TextEl("p", "salutation strong", cl.Salutation),
		).Add(each(cl.Paragraphs, func(p string) *Node {
			return TextEl("p", "paragraph", p)
		})...).Add(
			El("div", "signature",
				TextEl("p", "closing", cl.Closing),
				TextEl("p", "signer strong", pi.FullName),
			),
		),
	)
}

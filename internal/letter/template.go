package letter

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/credit-dispute/internal/models"
)

// Template renders a fixed FCRA dispute letter. It never fails.
type Template struct {
	now func() time.Time
}

// NewTemplate returns a template generator stamped with the current date.
func NewTemplate() *Template {
	return &Template{now: time.Now}
}

func (t *Template) Generate(_ context.Context, req models.LetterRequest) (models.GeneratedLetter, error) {
	return models.GeneratedLetter{
		Content:         t.Render(req),
		GeneratedWithAI: false,
	}, nil
}

// Render returns the letter text.
func (t *Template) Render(req models.LetterRequest) string {
	now := time.Now
	if t.now != nil {
		now = t.now
	}

	return fmt.Sprintf(templateText, now().Format("January 2, 2006"), req.AccountName, req.AccountType, req.Reason)
}

const templateText = `[Date: %s]

[Your Name]
[Your Address]
[City, State, ZIP Code]

[Credit Bureau Name]
[Credit Bureau Address]
[City, State, ZIP Code]

Re: Dispute of Credit Report Information

Dear Credit Bureau,

I am writing to formally dispute the following item on my credit report:

Account Name: %s
Account Type: %s

Dispute Details:
%s

This information is inaccurate and is negatively affecting my credit score. Under the Fair Credit Reporting Act (FCRA), I have the right to dispute inaccurate information on my credit report.

I am requesting that you:
1. Conduct a thorough investigation of this disputed item
2. Remove this inaccurate information from my credit report if it cannot be verified
3. Provide me with written confirmation of the results of your investigation
4. Send me an updated copy of my credit report once the investigation is complete

I have attached supporting documentation to substantiate my dispute. Please investigate this matter promptly as required by federal law.

I expect to receive your response within 30 days as mandated by the FCRA. If this item cannot be verified as accurate, please remove it from my credit report immediately.

Thank you for your prompt attention to this matter.

Sincerely,

[Your Signature]
[Your Printed Name]

Enclosures: Supporting Documentation`

package services

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/mkamau589/venue_booking/models"
)

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Georgia, serif; margin: 48px; color: #1a1a1a; }
  h1 { border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  td { padding: 8px 0; border-bottom: 1px solid #ddd; }
  td:last-child { text-align: right; }
  .total { font-weight: bold; font-size: 1.2em; }
  .footer { margin-top: 48px; font-size: 0.85em; color: #666; }
</style>
</head>
<body>
  <h1>Booking Receipt</h1>
  <p>Reference: <b>{{.ReferenceCode}}</b></p>
  <table>
    <tr><td>Venue</td><td>{{.VenueName}}</td></tr>
    <tr><td>Location</td><td>{{.Location}}</td></tr>
    <tr><td>Booked by</td><td>{{.UserName}}</td></tr>
    <tr><td>Date</td><td>{{.BookingDate}}</td></tr>
    <tr class="total"><td>Amount paid</td><td>${{printf "%.2f" .Amount}}</td></tr>
  </table>
  <p class="footer">Issued {{.IssuedAt}} by VenueBook.</p>
</body>
</html>`

// GenerateBookingReceipt renders a PDF receipt for a paid booking. The
// booking must have Venue and User preloaded.
func GenerateBookingReceipt(booking models.Booking) ([]byte, error) {
	htmlData, err := renderReceiptHTML(booking)
	if err != nil {
		return nil, err
	}
	return generatePDFFromHTML(htmlData)
}

func renderReceiptHTML(booking models.Booking) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		ReferenceCode string
		VenueName     string
		Location      string
		UserName      string
		BookingDate   string
		Amount        float64
		IssuedAt      string
	}{
		ReferenceCode: booking.ReferenceCode,
		VenueName:     booking.Venue.Name,
		Location:      booking.Venue.Location,
		UserName:      booking.User.FullName,
		BookingDate:   booking.StartDate.Format("January 2, 2006"),
		Amount:        booking.PaymentAmount,
		IssuedAt:      time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

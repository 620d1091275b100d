package notify

import (
	"strconv"
	"strings"
)

// Layouts are filled by literal substitution. Field values are not escaped,
// so callers must not pass markup they do not want rendered.

const confirmationSubject = "Your photography booking is confirmed"

const confirmationHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2c3e50;">Booking Confirmed</h2>
    <p>Dear {{client_name}},</p>
    <p>Thank you for booking with Capture Moments. Here are your booking details:</p>
    <table style="border-collapse: collapse;">
      <tr><td><strong>Photographer:</strong></td><td>{{photographer}}</td></tr>
      <tr><td><strong>Service:</strong></td><td>{{service}}</td></tr>
      <tr><td><strong>Date:</strong></td><td>{{date}}</td></tr>
      <tr><td><strong>Location:</strong></td><td>{{location}}</td></tr>
    </table>
    <p>Your photographer will contact you shortly to finalise the details.</p>
    <p>Best regards,<br>The Capture Moments Team</p>
  </div>
</body>
</html>`

const confirmationText = `Dear {{client_name}},

Thank you for booking with Capture Moments.

Photographer: {{photographer}}
Service: {{service}}
Date: {{date}}
Location: {{location}}

Your photographer will contact you shortly to finalise the details.

The Capture Moments Team`

const galleryReadySubject = "Your photos are ready"

const galleryReadyHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2c3e50;">Your Gallery Is Ready</h2>
    <p>Dear {{client_name}},</p>
    <p>{{photo_count}} photos from your event <strong>{{event_id}}</strong> are now available.</p>
    <p>Access code: <strong style="font-size: 18px;">{{access_code}}</strong></p>
    <p><a href="{{gallery_url}}" style="background: #3498db; color: #fff; padding: 10px 20px; text-decoration: none;">View Gallery</a></p>
    <p>Download links expire, so save your favourites soon.</p>
    <p>Best regards,<br>The Capture Moments Team</p>
  </div>
</body>
</html>`

const galleryReadyText = `Dear {{client_name}},

{{photo_count}} photos from your event {{event_id}} are now available.

Access code: {{access_code}}
Gallery: {{gallery_url}}

Download links expire, so save your favourites soon.

The Capture Moments Team`

const galleryReadySMS = "Capture Moments: {{photo_count}} photos from {{event_id}} are ready. Access code {{access_code}}. {{gallery_url}}"

// BookingConfirmation carries the fields of a booking confirmation message.
type BookingConfirmation struct {
	ClientName       string
	ClientEmail      string
	ClientPhone      string
	PhotographerName string
	Service          string
	Date             string
	Location         string
}

func (b BookingConfirmation) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{{client_name}}", b.ClientName,
		"{{photographer}}", b.PhotographerName,
		"{{service}}", b.Service,
		"{{date}}", b.Date,
		"{{location}}", b.Location,
	)
}

// GalleryReady carries the fields of a gallery delivery message.
type GalleryReady struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	EventID     string
	AccessCode  string
	PhotoCount  int
	GalleryURL  string
}

func (g GalleryReady) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{{client_name}}", g.ClientName,
		"{{event_id}}", g.EventID,
		"{{access_code}}", g.AccessCode,
		"{{photo_count}}", strconv.Itoa(g.PhotoCount),
		"{{gallery_url}}", g.GalleryURL,
	)
}

// SMSText is the short text message variant of the gallery notice.
func (g GalleryReady) SMSText() string {
	return g.replacer().Replace(galleryReadySMS)
}

type rendered struct {
	Subject string
	HTML    string
	Text    string
}

func renderConfirmation(b BookingConfirmation) rendered {
	r := b.replacer()
	return rendered{
		Subject: confirmationSubject,
		HTML:    r.Replace(confirmationHTML),
		Text:    r.Replace(confirmationText),
	}
}

func renderGalleryReady(g GalleryReady) rendered {
	r := g.replacer()
	return rendered{
		Subject: galleryReadySubject,
		HTML:    r.Replace(galleryReadyHTML),
		Text:    r.Replace(galleryReadyText),
	}
}

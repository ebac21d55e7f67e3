package sms_text

import (
	"fmt"
	"net/url"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/pkg/i18n"
	"foodbank/internal/pkg/timeslot"
	"foodbank/internal/service/sms"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgReminder  = "sms.pickup_reminder %[1]s %[2]s %[3]s %[4]s"
	msgUpdated   = "sms.pickup_updated %[1]s %[2]s %[3]s %[4]s"
	msgCancelled = "sms.pickup_cancelled %[1]s %[2]s %[3]s"
	msgLink      = "sms.link %[1]s"
)

func init() {
	i18n.Register(
		i18n.Entry{
			Key:     msgReminder,
			English: "Reminder: pick up your food parcel %[1]s %[2]s-%[3]s at %[4]s.",
			Swedish: "Påminnelse: hämta din matkasse %[1]s %[2]s-%[3]s på %[4]s.",
		},
		i18n.Entry{
			Key:     msgUpdated,
			English: "Your pickup time has changed: %[1]s %[2]s-%[3]s at %[4]s.",
			Swedish: "Din hämtningstid har ändrats: %[1]s %[2]s-%[3]s på %[4]s.",
		},
		i18n.Entry{
			Key:     msgCancelled,
			English: "Your food parcel pickup %[1]s %[2]s at %[3]s has been cancelled.",
			Swedish: "Din hämtning av matkasse %[1]s %[2]s på %[3]s är inställd.",
		},
		i18n.Entry{
			Key:     msgLink,
			English: "Details: %[1]s",
			Swedish: "Detaljer: %[1]s",
		},
	)
}

var (
	weekdays = map[language.Tag][7]string{
		language.English: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		language.Swedish: {"sön", "mån", "tis", "ons", "tor", "fre", "lör"},
	}
	months = map[language.Tag][12]string{
		language.English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		language.Swedish: {"jan", "feb", "mar", "apr", "maj", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
	}
)

type RenderFn func(data entities.SmsTextData) string

type TextFactory struct {
	calendar      *timeslot.Calendar
	publicBaseURL string
}

func New(calendar *timeslot.Calendar, publicBaseURL string) *TextFactory {
	return &TextFactory{
		calendar:      calendar,
		publicBaseURL: publicBaseURL,
	}
}

func (f *TextFactory) Render(intent entities.SmsIntent, data entities.SmsTextData) (string, error) {
	render, err := f.GetRenderer(intent)
	if err != nil {
		return "", err
	}
	return render(data), nil
}

func (f *TextFactory) GetRenderer(intent entities.SmsIntent) (RenderFn, error) {
	switch intent {
	case entities.SmsPickupReminder:
		return f.reminderText, nil
	case entities.SmsPickupUpdated:
		return f.updatedText, nil
	case entities.SmsPickupCancelled:
		return f.cancelledText, nil
	default:
		return nil, fmt.Errorf("%w: %s", sms.ErrUndefinedIntent, intent)
	}
}

func (f *TextFactory) reminderText(data entities.SmsTextData) string {
	tag := i18n.Match(data.Locale)
	p := message.NewPrinter(tag)
	text := p.Sprintf(msgReminder,
		f.day(tag, data.PickupEarliest),
		f.clock(data.PickupEarliest),
		f.clock(data.PickupLatest),
		data.LocationName,
	)
	return f.withLink(p, text, data.ParcelID)
}

func (f *TextFactory) updatedText(data entities.SmsTextData) string {
	tag := i18n.Match(data.Locale)
	p := message.NewPrinter(tag)
	text := p.Sprintf(msgUpdated,
		f.day(tag, data.PickupEarliest),
		f.clock(data.PickupEarliest),
		f.clock(data.PickupLatest),
		data.LocationName,
	)
	return f.withLink(p, text, data.ParcelID)
}

func (f *TextFactory) cancelledText(data entities.SmsTextData) string {
	tag := i18n.Match(data.Locale)
	return message.NewPrinter(tag).Sprintf(msgCancelled,
		f.day(tag, data.PickupEarliest),
		f.clock(data.PickupEarliest),
		data.LocationName,
	)
}

func (f *TextFactory) withLink(p *message.Printer, text, parcelID string) string {
	if f.publicBaseURL == "" || parcelID == "" {
		return text
	}
	link, err := url.JoinPath(f.publicBaseURL, "p", parcelID)
	if err != nil {
		return text
	}
	return text + " " + p.Sprintf(msgLink, link)
}

func (f *TextFactory) day(tag language.Tag, t time.Time) string {
	local := t.In(f.calendar.Location())
	return fmt.Sprintf("%s %d %s", weekdays[tag][local.Weekday()], local.Day(), months[tag][local.Month()-1])
}

func (f *TextFactory) clock(t time.Time) string {
	return timeslot.FormatClock(f.calendar.MinutesOfDay(t))
}

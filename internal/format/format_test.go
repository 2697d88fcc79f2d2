package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFollowerCount(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"abaixo de mil", 999, "999"},
		{"zero", 0, "0"},
		{"exatamente mil", 1000, "1.0K"},
		{"sem subir para milhões", 999999, "1000.0K"},
		{"milhão e meio", 1500000, "1.5M"},
		{"arredonda para cima no meio", 1250000, "1.3M"},
		{"arredonda milhares", 1250, "1.3K"},
		{"arredonda para baixo", 1240000, "1.2M"},
		{"negativo vira zero", -5, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FollowerCount(tt.in))
		})
	}
}

func TestFormatter_Currency(t *testing.T) {
	f := New(time.UTC, "")

	assert.Equal(t, "₦0", f.Currency(0))
	assert.Equal(t, "₦12,000", f.Currency(12000))
	assert.Equal(t, "₦1,234,567", f.Currency(1234567))
	assert.Equal(t, "₦999", f.Currency(999.4))
}

func TestFormatter_Date(t *testing.T) {
	f := New(time.UTC, "")

	assert.Equal(t, "05-01-2024", f.Date("2024-01-05T10:00:00Z"))
	assert.Equal(t, "15-01-2024", f.Date("2024-01-15"))
	assert.Equal(t, "not-a-date", f.Date("not-a-date"))

	lagos, err := time.LoadLocation("Africa/Lagos")
	if err == nil {
		f = New(lagos, "")
		assert.Equal(t, "06-01-2024", f.Date("2024-01-05T23:30:00Z"))
	}
}

func TestFormatter_RelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	f := New(time.UTC, "")
	f.Now = func() time.Time { return now }

	ago := func(d time.Duration) string {
		return now.Add(-d).Format(time.RFC3339)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"30 segundos", ago(30 * time.Second), "just now"},
		{"90 segundos", ago(90 * time.Second), "a minute ago"},
		{"150 segundos", ago(150 * time.Second), "2 minutes ago"},
		{"59 minutos", ago(59 * time.Minute), "59 minutes ago"},
		{"uma hora e meia", ago(90 * time.Minute), "an hour ago"},
		{"5 horas", ago(5 * time.Hour), "5 hours ago"},
		{"um dia", ago(24 * time.Hour), "yesterday"},
		{"7 dias", ago(7 * 24 * time.Hour), "7 days ago"},
		{"10 dias usa a data", ago(10 * 24 * time.Hour), "10-03-2024"},
		{"futuro", now.Add(time.Hour).Format(time.RFC3339), "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.RelativeTime(tt.in))
		})
	}
}

func TestHumanizeStatus(t *testing.T) {
	assert.Equal(t, "Payment Received", HumanizeStatus("payment_received"))
	assert.Equal(t, "In Progress", HumanizeStatus("in_progress"))
	assert.Equal(t, "Pending", HumanizeStatus("pending"))
	assert.Equal(t, "Re-Opened", HumanizeStatus("re-opened"))
	assert.Equal(t, "", HumanizeStatus(""))
}

func TestShortenID(t *testing.T) {
	assert.Equal(t, "ESC-A1B2", ShortenID("ESC", "65f0c9e4a1b2"))
	assert.Equal(t, "ESC-AB", ShortenID("ESC", "ab"))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AO", Initials("Ada Obi"))
	assert.Equal(t, "AOC", Initials("Ada  Obi Chukwu"))
	assert.Equal(t, "", Initials(""))
}

func TestStatusTier(t *testing.T) {
	assert.Equal(t, TierWarning, StatusTier(KindAccount, "pending"))
	assert.Equal(t, TierInfo, StatusTier(KindTransaction, "payment_received"))
	assert.Equal(t, TierDanger, StatusTier(KindTransaction, "dispute"))
	assert.Equal(t, TierSuccess, StatusTier(KindOrder, "completed"))
	assert.Equal(t, TierNeutral, StatusTier(KindOrder, "archived"))
	assert.Equal(t, TierNeutral, StatusTier(Kind("unknown"), "pending"))

	assert.Equal(t, "clock", StatusIcon(KindOrder, "in_progress"))
	assert.Equal(t, "", StatusIcon(KindAccount, "pending"))
	assert.Equal(t, "", StatusIcon(KindTransaction, "whatever"))

	assert.Equal(t, "tiktok", PlatformIcon("TikTok"))
	assert.Equal(t, "", PlatformIcon("myspace"))
}

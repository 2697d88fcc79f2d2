// Package format contém as funções de derivação usadas por todas as páginas
// do painel: moeda, seguidores, datas, tempo relativo e rótulos de status.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultCurrencySymbol = "₦"
	dateLayout            = "02-01-2006"
)

// Formatter agrupa as dependências de exibição (fuso e relógio).
// O valor zero usa UTC, o símbolo padrão e time.Now.
type Formatter struct {
	Location       *time.Location
	CurrencySymbol string
	Now            func() time.Time
	printer        *message.Printer
}

func New(loc *time.Location, currencySymbol string) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	return &Formatter{
		Location:       loc,
		CurrencySymbol: currencySymbol,
		Now:            time.Now,
		printer:        message.NewPrinter(language.English),
	}
}

func (f *Formatter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// Current retorna o horário do relógio do formatter
func (f *Formatter) Current() time.Time {
	return f.now()
}

// FollowerCount abrevia contagens: 1250000 -> "1.3M", 1000 -> "1.0K", 999 -> "999".
// O arredondamento é half-up na primeira casa decimal e não sobe de K para M.
func FollowerCount(n int64) string {
	if n < 0 {
		n = 0
	}

	switch {
	case n >= 1_000_000:
		tenths := (n*10 + 500_000) / 1_000_000
		return fmt.Sprintf("%d.%dM", tenths/10, tenths%10)
	case n >= 1_000:
		tenths := (n*10 + 500) / 1_000
		return fmt.Sprintf("%d.%dK", tenths/10, tenths%10)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Currency formata um valor inteiro com separador de milhar: 12000 -> "₦12,000"
func (f *Formatter) Currency(n float64) string {
	p := f.printer
	if p == nil {
		p = message.NewPrinter(language.English)
	}

	symbol := f.CurrencySymbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}

	return symbol + p.Sprintf("%d", int64(math.Round(n)))
}

// ParseTimestamp aceita ISO 8601 completo ou apenas a data (YYYY-MM-DD)
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("format: invalid timestamp %q", value)
}

// Date retorna "DD-MM-YYYY" no fuso configurado. Entradas inválidas são devolvidas como vieram.
func (f *Formatter) Date(iso string) string {
	t, err := ParseTimestamp(iso)
	if err != nil {
		return iso
	}
	return t.In(f.location()).Format(dateLayout)
}

// RelativeTime descreve há quanto tempo o instante ocorreu ("just now", "2 minutes ago", "yesterday"...).
// Acima de 7 dias usa Date.
func (f *Formatter) RelativeTime(iso string) string {
	t, err := ParseTimestamp(iso)
	if err != nil {
		return iso
	}

	seconds := int64(math.Floor(float64(f.now().Sub(t).Milliseconds()) / 1000))
	minutes := floorDiv(seconds, 60)
	hours := floorDiv(minutes, 60)
	days := floorDiv(hours, 24)

	switch {
	case seconds < 60:
		return "just now"
	case minutes < 2:
		return "a minute ago"
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case hours < 2:
		return "an hour ago"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	case days == 1:
		return "yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}

	return f.Date(iso)
}

func floorDiv(a, b int64) int64 {
	return int64(math.Floor(float64(a) / float64(b)))
}

// HumanizeStatus troca "_" por espaço e coloca em maiúscula a primeira letra de cada palavra
func HumanizeStatus(token string) string {
	token = strings.ReplaceAll(token, "_", " ")

	out := []byte(token)
	prevWord := false
	for i, c := range out {
		word := isWordByte(c)
		if word && !prevWord && c >= 'a' && c <= 'z' {
			out[i] = c - ('a' - 'A')
		}
		prevWord = word
	}

	return string(out)
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ShortenID gera o identificador curto exibido nas tabelas: ShortenID("ESC", "65f0a1b2") -> "ESC-A1B2"
func ShortenID(tag, id string) string {
	tail := id
	if len(id) > 4 {
		tail = id[len(id)-4:]
	}
	return tag + "-" + strings.ToUpper(tail)
}

// Initials monta o fallback do avatar a partir do nome completo
func Initials(fullName string) string {
	var b strings.Builder
	for _, part := range strings.Split(fullName, " ") {
		if part == "" {
			continue
		}
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return b.String()
}

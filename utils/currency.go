package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyCode is the single currency the system supports. Every monetary
// field is a non-negative integer in this unit.
const CurrencyCode = "YER"

// DefaultLocale drives number grouping when the caller gives none.
const DefaultLocale = "ar-YE"

var (
	ErrInvalidAmount       = errors.New("amounts must be non-negative integers in YER")
	ErrUnsupportedCurrency = errors.New("only the YER currency is supported")
	ErrForbiddenField      = errors.New("tax fields are not supported")
)

// AssertAmount rejects negative amounts. Integrality is carried by the type.
func AssertAmount(value int64) error {
	if value < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// AmountFromFloat converts a JSON number into an integer YER amount,
// rejecting fractional or negative values instead of coercing them.
func AmountFromFloat(value float64) (int64, error) {
	if value < 0 || value != math.Trunc(value) {
		return 0, ErrInvalidAmount
	}
	return int64(value), nil
}

// FormatYER renders a stored amount with locale grouping and the currency
// code. Storage amounts are never negative, so negative input is an error.
func FormatYER(value int64, locale string) (string, error) {
	if err := AssertAmount(value); err != nil {
		return "", err
	}
	return groupDigits(value, locale) + " " + CurrencyCode, nil
}

// FormatSignedYER is the display-only path for ledger views that pre-negate
// outgoing amounts. It must never be used for values headed to storage.
func FormatSignedYER(value int64, locale string) string {
	if value < 0 {
		return "-" + groupDigits(-value, locale) + " " + CurrencyCode
	}
	return groupDigits(value, locale) + " " + CurrencyCode
}

func groupDigits(value int64, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(value))
}

// Payload keys blocked everywhere: the system has no tax handling at all.
var blockedTokens = []string{"tax", "vat", "wht"}

var tokenBoundary = regexp.MustCompile(`[a-z]+`)

func keyHasBlockedToken(key string) bool {
	for _, word := range tokenBoundary.FindAllString(strings.ToLower(key), -1) {
		for _, token := range blockedTokens {
			if word == token {
				return true
			}
		}
	}
	return false
}

// GuardPayload walks a decoded JSON payload and rejects tax-related keys
// and any currency field that is not YER.
func GuardPayload(payload interface{}) error {
	switch value := payload.(type) {
	case map[string]interface{}:
		for key, nested := range value {
			if keyHasBlockedToken(key) {
				return ErrForbiddenField
			}
			if strings.Contains(strings.ToLower(key), "currency") {
				code, ok := nested.(string)
				if ok && !strings.EqualFold(code, CurrencyCode) {
					return ErrUnsupportedCurrency
				}
			}
			if err := GuardPayload(nested); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, nested := range value {
			if err := GuardPayload(nested); err != nil {
				return err
			}
		}
	}
	return nil
}

// CurrencyGuard inspects JSON request bodies before the handlers run and
// rejects writes that carry forbidden fields. The body is restored for the
// downstream binding.
func CurrencyGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			RespondWithError(c, http.StatusBadRequest, "Failed to read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		if len(bytes.TrimSpace(raw)) == 0 {
			c.Next()
			return
		}
		var payload interface{}
		if err := json.Unmarshal(raw, &payload); err != nil {
			// Not JSON; let the handler's binding complain.
			c.Next()
			return
		}
		if err := GuardPayload(payload); err != nil {
			RespondWithError(c, http.StatusBadRequest, err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

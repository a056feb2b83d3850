package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"laundrypro/internal/models"
)

// Result is the outcome of a single check. Every check is total: it never
// panics and never returns an error, only a failed Result carrying a
// human-readable reason.
type Result struct {
	OK     bool
	Reason string
}

func pass() Result { return Result{OK: true} }

func fail(reason string) Result { return Result{Reason: reason} }

var (
	// Mobile numbers are exactly 10 digits with a 6-9 leading digit.
	mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	otpRegex    = regexp.MustCompile(`^\d{4}$`)
	cardRegex   = regexp.MustCompile(`^\d{16}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex    = regexp.MustCompile(`^\d{3}$`)
	upiRegex    = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)

	cardSeparators = strings.NewReplacer(" ", "", "-", "")
)

// Validator wraps a validator.Validate instance with the domain's custom
// tags registered: inmobile, otp4, cardnumber, cardexpiry, cvv3 and upi.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time // injectable for expiry tests
}

// New creates a Validator with all custom tags registered.
func New() *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      time.Now,
	}
	// RegisterValidation only errors on an empty tag or nil func.
	_ = v.validate.RegisterValidation("inmobile", regexRule(mobileRegex))
	_ = v.validate.RegisterValidation("otp4", regexRule(otpRegex))
	_ = v.validate.RegisterValidation("cardnumber", regexRule(cardRegex))
	_ = v.validate.RegisterValidation("cvv3", regexRule(cvvRegex))
	_ = v.validate.RegisterValidation("upi", regexRule(upiRegex))
	_ = v.validate.RegisterValidation("cardexpiry", v.expiryRule)
	return v
}

func regexRule(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// expiryRule accepts MM/YY dates in the current month or later, comparing
// two-digit years the way the payment form does.
func (v *Validator) expiryRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !expiryRegex.MatchString(s) {
		return false
	}
	month, _ := strconv.Atoi(s[:2])
	year, _ := strconv.Atoi(s[3:])
	now := v.now()
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year != currentYear {
		return year > currentYear
	}
	return month >= currentMonth
}

// IsEmail reports whether s has a local@domain.tld shape.
func (v *Validator) IsEmail(s string) bool {
	return v.validate.Var(s, "email") == nil
}

// IsMobile reports whether s is a valid 10-digit mobile number.
func (v *Validator) IsMobile(s string) bool {
	return v.validate.Var(s, "inmobile") == nil
}

// ClassifyIdentifier is the single classifier for "email or mobile number"
// inputs. Every caller that needs to branch on identifier shape goes through
// here rather than re-deriving it.
func (v *Validator) ClassifyIdentifier(s string) (models.IdentifierKind, Result) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fail("email or mobile number is required")
	}
	if v.IsEmail(s) {
		return models.KindEmail, pass()
	}
	if v.IsMobile(s) {
		return models.KindMobile, pass()
	}
	if allDigits(s) {
		return "", fail("enter a valid 10-digit mobile number")
	}
	return "", fail("enter a valid email address or mobile number")
}

// CheckPassword applies the password policy and reports the first violated
// rule, in a fixed priority order: too short, too long, missing letter,
// missing digit, missing special character.
func (v *Validator) CheckPassword(s string) Result {
	if len(s) < 6 {
		return fail("password must be at least 6 characters")
	}
	if len(s) > 15 {
		return fail("password must be at most 15 characters")
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasLetter {
		return fail("password must contain a letter")
	}
	if !hasDigit {
		return fail("password must contain a digit")
	}
	if !hasSpecial {
		return fail("password must contain a special character")
	}
	return pass()
}

// CheckStruct runs the registered struct tags over a tagged value and
// reports the first violated field, named the way the forms label it.
func (v *Validator) CheckStruct(value any) Result {
	err := v.validate.Struct(value)
	if err == nil {
		return pass()
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fail("invalid input")
	}
	return fail(fieldReason(verrs[0]))
}

// fieldReason turns a field error into the message the form shows.
func fieldReason(fe validator.FieldError) string {
	field := humanField(fe.Field())
	switch {
	case fe.Tag() == "required":
		return field + " is required"
	case field == "quantity":
		return "quantity must be between 1 and 999"
	case fe.Tag() == "min":
		return field + " is too small"
	case fe.Tag() == "max":
		return field + " is too large"
	}
	return field + " is invalid"
}

// humanField lowercases a CamelCase field name into form wording, so
// PickupTime reads as "pickup time".
func humanField(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteRune(' ')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckOtp verifies s is exactly four numeric characters.
func (v *Validator) CheckOtp(s string) Result {
	if v.validate.Var(s, "otp4") != nil {
		return fail("enter the 4-digit OTP")
	}
	return pass()
}

// CheckCard validates card payment fields. Separators in the card number are
// stripped before the 16-digit check. The first failing field wins.
func (v *Validator) CheckCard(number, expiry, cvv string) Result {
	clean := cardSeparators.Replace(number)
	if v.validate.Var(clean, "cardnumber") != nil {
		return fail("enter a valid 16-digit card number")
	}
	if !expiryRegex.MatchString(expiry) {
		return fail("enter a valid expiry date (MM/YY)")
	}
	if v.validate.Var(expiry, "cardexpiry") != nil {
		return fail("this card has expired")
	}
	if v.validate.Var(cvv, "cvv3") != nil {
		return fail("enter a valid 3-digit CVV")
	}
	return pass()
}

// CheckUpi validates a handle@provider UPI ID.
func (v *Validator) CheckUpi(id string) Result {
	if v.validate.Var(id, "upi") != nil {
		return fail("enter a valid UPI ID (e.g. example@upi)")
	}
	return pass()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

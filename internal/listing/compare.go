package listing

import (
	"cmp"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two items: negative when a sorts first, zero on a tie.
type Comparator[T any] func(a, b T) int

// collate.Collator keeps scratch buffers, so each comparison borrows one.
var collators = sync.Pool{
	New: func() any { return collate.New(language.English) },
}

// CompareLocale compares two strings the way a user expects text to be
// ordered (case and accents only break ties).
func CompareLocale(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// ByString orders items by a text field using locale-aware collation.
func ByString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return CompareLocale(field(a), field(b))
	}
}

// ByNumber orders items by a numeric field.
func ByNumber[T any, N cmp.Ordered](field func(T) N) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(field(a), field(b))
	}
}

// ByDate orders items by an ISO-8601 timestamp. The format sorts correctly
// as plain text, so no parsing happens.
func ByDate[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(field(a), field(b))
	}
}

// Descending flips a comparator. Ties still compare equal, so a stable sort
// keeps their input order in both directions.
func Descending[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

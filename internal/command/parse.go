package command

import (
	"errors"
	"strconv"
	"strings"

	"group-ledger/internal/domain"
)

const (
	// MaxArgs - максимальное число слов в строке команды.
	MaxArgs = 4
	// MaxLineLength - длина строки без перевода строки, которая ещё помещается во входной буфер.
	MaxLineLength = 255

	delimiters = " \n"
)

var (
	ErrSyntax           = errors.New("incorrect syntax")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrLineTooLong      = errors.New("line too long")
)

// Tokenize делит строку на слова по пробелам и переводам строки.
// Пустые слова пропускаются. Больше MaxArgs слов - ErrTooManyArguments.
func Tokenize(line string) ([]string, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
	if len(fields) > MaxArgs {
		return nil, ErrTooManyArguments
	}
	return fields, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// floatPrefix возвращает самый длинный префикс s, который читается как
// десятичное число с плавающей точкой, либо "" если цифр нет.
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	rest := s[i:]
	switch {
	case hasPrefixFold(rest, "infinity"):
		return s[:i+len("infinity")]
	case hasPrefixFold(rest, "inf"), hasPrefixFold(rest, "nan"):
		return s[:i+3]
	}

	start := i
	i = digits(s, i)
	mantissa := i - start
	if i < len(s) && s[i] == '.' {
		end := digits(s, i+1)
		mantissa += end - i - 1
		i = end
	}
	if mantissa == 0 {
		return ""
	}

	// Экспонента учитывается, только если за ней есть цифры
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if end := digits(s, j); end > j {
			i = end
		}
	}
	return s[:i]
}

// ParseAmount читает сумму по правилам strtod: начальные пробелы пропускаются,
// берётся самый длинный числовой префикс, хвост игнорируется.
// Если не прочитано ни одной цифры - ErrInvalidNumber.
func ParseAmount(s string) (float64, error) {
	prefix := floatPrefix(skipSpace(s))
	if prefix == "" {
		return 0, domain.ErrInvalidNumber
	}

	amount, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, domain.ErrInvalidNumber
	}
	// При переполнении ParseFloat возвращает ±Inf, как и strtod
	return amount, nil
}

// ParseCount читает целое по правилам strtol с основанием 10.
// Значения за пределами int обрезаются до границы.
func ParseCount(s string) (int, error) {
	s = skipSpace(s)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	end := digits(s, i)
	if end == i {
		return 0, domain.ErrInvalidNumber
	}

	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, domain.ErrInvalidNumber
	}
	return int(n), nil
}

package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"currency-transactions/internal/models"
)

// maxSurnameLength - фамилии длиннее сокращаются до инициалов имени и отчества
const maxSurnameLength = 8

// NormalizeName строит отображаемое имя клиента по строке "Фамилия Имя Отчество".
// Для фамилий длиннее восьми символов: "Константинов П.С.", иначе строка без изменений.
func NormalizeName(identity []string) (string, error) {
	if len(identity) == 0 {
		return "", fmt.Errorf("%w: empty identity row", models.ErrMalformedName)
	}

	tokens := strings.Split(identity[0], " ")
	if utf8.RuneCountInString(tokens[0]) <= maxSurnameLength {
		return strings.Join(identity, " "), nil
	}

	if len(tokens) < 3 || tokens[1] == "" || tokens[2] == "" {
		return "", fmt.Errorf("%w: %q has no given name or patronymic", models.ErrMalformedName, identity[0])
	}

	return fmt.Sprintf("%s %s.%s.", tokens[0], firstRune(tokens[1]), firstRune(tokens[2])), nil
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

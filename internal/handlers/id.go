package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// ID aceita o id como número ou string numérica ({"turno_id":5} ou
// {"turno_id":"5"}). Qualquer outra coisa é body inválido.
type ID uint

func (id *ID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return fmt.Errorf("invalid input syntax for type bigint: %s", b)
	}

	*id = ID(n)
	return nil
}

// Ptr devolve nil para campo ausente.
func (id *ID) Ptr() *uint {
	if id == nil {
		return nil
	}
	v := uint(*id)
	return &v
}

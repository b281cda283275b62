package shash

import (
	"io"
	"os"
	"strings"
)

func (t *Table) format(walk func(func(key, value string) bool)) string {
	var sb strings.Builder
	sb.WriteByte('{')
	var first = true
	walk(func(key, value string) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString("'" + key + "': '" + value + "'")
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// String formats the table in ascending key order as
// {'key1': 'value1', 'key2': 'value2'}. An empty table is {}.
func (t *Table) String() string {
	return t.format(t.Ascend)
}

// ReverseString is String in descending key order.
func (t *Table) ReverseString() string {
	return t.format(t.Descend)
}

// Fprint writes String and a newline to w. A nil table writes nothing.
func (t *Table) Fprint(w io.Writer) error {
	if t == nil {
		return nil
	}
	_, err := io.WriteString(w, t.String()+"\n")
	return err
}

// FprintReverse writes ReverseString and a newline to w. A nil table writes
// nothing.
func (t *Table) FprintReverse(w io.Writer) error {
	if t == nil {
		return nil
	}
	_, err := io.WriteString(w, t.ReverseString()+"\n")
	return err
}

func (t *Table) Print() error {
	return t.Fprint(os.Stdout)
}

func (t *Table) PrintReverse() error {
	return t.FprintReverse(os.Stdout)
}

package bimap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
)

// The JSON form of a bidirectional map is exactly the JSON form of a
// plain map holding the same pairs: one object member per pair, in the
// map's iteration order, with no extra structure. Decoding replays one
// Insert per member in document order, so a document that is not itself a
// bijection still decodes into a valid map; see the package documentation
// for how colliding members resolve.

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler. Pairs become the members of a
// JSON object, in the same order All iterates them.
func (m *BiHashMap[L, R]) MarshalJSON() ([]byte, error) {
	return marshalJSONPairs(m.Len(), m.All())
}

// UnmarshalJSON implements json.Unmarshaler. Members are inserted in
// document order, so a value appearing twice resolves in favor of its
// last member. On failure the receiver is untouched; on success its
// contents are replaced wholesale, so the receiver may be a zero value.
// A JSON null is a no-op, per the json.Unmarshaler convention.
func (m *BiHashMap[L, R]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	fresh := NewBiHashMap[L, R]()
	if err := unmarshalJSONPairs(data, func(left L, right R) {
		fresh.Insert(left, right)
	}); err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// MarshalJSON implements json.Marshaler. Pairs become the members of a
// JSON object, in ascending left order.
func (m *BiTreeMap[L, R]) MarshalJSON() ([]byte, error) {
	return marshalJSONPairs(m.Len(), m.All())
}

// UnmarshalJSON implements json.Unmarshaler, with the same replay and
// replacement semantics as the BiHashMap implementation.
func (m *BiTreeMap[L, R]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	fresh := NewBiTreeMap[L, R]()
	if err := unmarshalJSONPairs(data, func(left L, right R) {
		fresh.Insert(left, right)
	}); err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// marshalJSONPairs renders a JSON object with one member per pair, in the
// order the sequence yields them. encoding/json sorts map keys, so the
// object is built by hand to preserve that order.
func marshalJSONPairs[L, R any](n int, pairs iter.Seq2[L, R]) ([]byte, error) {
	buf := make([]byte, 0, 2+16*n)
	buf = append(buf, '{')
	first := true
	for left, right := range pairs {
		if !first {
			buf = append(buf, ',')
		}
		first = false

		var err error
		buf, err = appendJSONKey(buf, left)
		if err != nil {
			return nil, err
		}
		buf = append(buf, ':')

		rightJSON, err := json.Marshal(right)
		if err != nil {
			return nil, err
		}
		buf = append(buf, rightJSON...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// appendJSONKey writes a value in object key position, mirroring
// encoding/json's map key encoding: strings and text marshalers are used
// as-is, numbers are quoted. Types that encode as objects, arrays,
// booleans or null cannot be object keys.
func appendJSONKey[L any](buf []byte, key L) ([]byte, error) {
	keyJSON, err := json.Marshal(key)
	if err != nil {
		return nil, err
	}
	switch keyJSON[0] {
	case '"':
		return append(buf, keyJSON...), nil
	case '{', '[', 't', 'f', 'n':
		return nil, fmt.Errorf("bimap: cannot encode %T as a JSON object key", key)
	default:
		buf = append(buf, '"')
		buf = append(buf, keyJSON...)
		return append(buf, '"'), nil
	}
}

// unmarshalJSONPairs walks a JSON object with the token decoder, which
// yields members in document order, and hands each decoded pair to
// insert. json.Unmarshal would route through map[L]R and lose both the
// member order and the duplicate members.
func unmarshalJSONPairs[L, R any](data []byte, insert func(L, R)) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("bimap: cannot decode JSON %v into a bimap, expected an object", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("bimap: unexpected JSON object key %v", keyTok)
		}
		var left L
		if err := unmarshalJSONKey(key, &left); err != nil {
			return err
		}
		var right R
		if err := dec.Decode(&right); err != nil {
			return err
		}
		insert(left, right)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("bimap: unexpected data after JSON object")
	}
	return nil
}

// unmarshalJSONKey decodes a JSON object key into an arbitrary key type,
// mirroring encoding/json's map key handling: string-like types
// (including text unmarshalers) consume the quoted form, numeric types
// consume the raw form.
func unmarshalJSONKey[L any](key string, into *L) error {
	quoted, err := json.Marshal(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(quoted, into); err == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(key), into); err != nil {
		return fmt.Errorf("bimap: cannot decode JSON object key %q: %w", key, err)
	}
	return nil
}

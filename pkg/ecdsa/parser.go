package ecdsa

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/curvekit/ecdsa-weierstrass/pkg/weierstrass"
)

// JSONParser reads signature records from a JSON file. Field names are
// configurable so dumps from other tools can be consumed without rewriting
// them.
type JSONParser struct {
	MessageField string // Field name for a raw message (default: "message")
	RField       string // Field name for r (default: "r")
	SField       string // Field name for s (default: "s")
	ZField       string // Field name for the digest (default: "z")
}

// ParseSignatures parses signature records from a JSON file.
//
// Expected format:
//
//	[
//	  {"z": "0x...", "r": "0x...", "s": "0x..."},
//	  {"message": "...", "r": "...", "s": "..."}
//	]
//
// Values may be hex (0x-prefixed) or decimal. Records without a digest
// field fall back to hashing the message field with SHA-256 mod N.
func (p *JSONParser) ParseSignatures(path string, c *weierstrass.Curve) ([]*SignatureRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber() // Preserve large numbers instead of going through float64

	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	messageField := p.MessageField
	if messageField == "" {
		messageField = "message"
	}
	rField := p.RField
	if rField == "" {
		rField = "r"
	}
	sField := p.SField
	if sField == "" {
		sField = "s"
	}
	zField := p.ZField
	if zField == "" {
		zField = "z"
	}

	records := make([]*SignatureRecord, 0, len(items))
	for i, item := range items {
		rec := &SignatureRecord{Sig: &Signature{}}

		if zVal, ok := item[zField]; ok {
			z, err := parseBigInt(zVal)
			if err != nil {
				return nil, fmt.Errorf("record %d: failed to parse z: %w", i, err)
			}
			rec.Z = z
		} else if msgVal, ok := item[messageField]; ok {
			msg, ok := msgVal.(string)
			if !ok {
				return nil, fmt.Errorf("record %d: message is not a string", i)
			}
			rec.Z = HashMessage([]byte(msg), c)
		} else {
			return nil, fmt.Errorf("record %d: neither %q nor %q present", i, zField, messageField)
		}

		rVal, ok := item[rField]
		if !ok {
			return nil, fmt.Errorf("record %d: missing %q", i, rField)
		}
		r, err := parseBigInt(rVal)
		if err != nil {
			return nil, fmt.Errorf("record %d: failed to parse r: %w", i, err)
		}
		rec.Sig.R = r

		sVal, ok := item[sField]
		if !ok {
			return nil, fmt.Errorf("record %d: missing %q", i, sField)
		}
		s, err := parseBigInt(sVal)
		if err != nil {
			return nil, fmt.Errorf("record %d: failed to parse s: %w", i, err)
		}
		rec.Sig.S = s

		records = append(records, rec)
	}
	return records, nil
}

// parseBigInt converts a JSON value to a big integer. Strings may be hex
// with a 0x prefix or decimal; bare JSON numbers are decimal.
func parseBigInt(v interface{}) (*big.Int, error) {
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		base := 10
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			s = s[2:]
			base = 16
		}
		out, ok := new(big.Int).SetString(s, base)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", val)
		}
		return out, nil
	case json.Number:
		out, ok := new(big.Int).SetString(string(val), 10)
		if !ok {
			return nil, fmt.Errorf("invalid number %q", val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

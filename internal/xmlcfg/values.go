package xmlcfg

import (
	"bytes"
	"encoding/xml"

	"github.com/beevik/etree"
	"github.com/pkg/errors"

	"github.com/scratchmex/huawei-decode/internal/value"
)

// Failure records an attribute that looked like a value but did not decrypt.
type Failure struct {
	Path string
	Attr string
	Err  error
}

// Stats summarizes a DecryptValues run.
type Stats struct {
	Values    int
	Decrypted int
	Failures  []Failure
}

// DecryptValues replaces every `$2...$` attribute in doc with its plaintext.
// Attributes that fail to decrypt, or decrypt to "", are kept as they are.
func DecryptValues(doc []byte, key value.Key) ([]byte, Stats, error) {
	var stats Stats

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(doc); err != nil {
		return nil, stats, errors.Wrap(err, "parse xml")
	}

	for _, elem := range tree.FindElements("//*") {
		for i := range elem.Attr {
			attr := &elem.Attr[i]
			if !value.IsEnveloped(attr.Value) {
				continue
			}
			stats.Values++

			plain, err := value.Decrypt(attr.Value, key)
			if err != nil {
				stats.Failures = append(stats.Failures, Failure{Path: elem.GetPath(), Attr: attr.FullKey(), Err: err})
				continue
			}
			if plain == "" {
				continue
			}
			attr.Value = plain
			stats.Decrypted++
		}
	}

	var out bytes.Buffer
	if !hasDeclaration(tree) {
		out.WriteString(xml.Header)
	}
	if _, err := tree.WriteTo(&out); err != nil {
		return nil, stats, errors.Wrap(err, "write xml")
	}
	return out.Bytes(), stats, nil
}

func hasDeclaration(doc *etree.Document) bool {
	for _, t := range doc.Child {
		if p, ok := t.(*etree.ProcInst); ok && p.Target == "xml" {
			return true
		}
	}
	return false
}

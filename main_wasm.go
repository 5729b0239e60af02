//go:build js

//go:generate cp $GOROOT/lib/wasm/wasm_exec.js .

package main

import (
	"crypto/rand"
	"syscall/js"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/scratchmex/huawei-decode/internal/value"
	"github.com/scratchmex/huawei-decode/internal/xmlcfg"
)

func argAt(args []js.Value, i int) (js.Value, error) {
	if len(args) <= i {
		return js.Undefined(), errors.Wrapf(errMissingArgument, "argument %d", i)
	}
	return args[i], nil
}

func isUint8Array(v js.Value) bool {
	return v.Type() == js.TypeObject && v.InstanceOf(js.Global().Get("Uint8Array"))
}

func getBytesFromJs(args []js.Value, i int) ([]byte, error) {
	v, err := argAt(args, i)
	if err != nil {
		return nil, err
	}
	if !isUint8Array(v) {
		return nil, errors.Errorf("argument %d: expected Uint8Array, got %s", i, v.Type())
	}
	size := v.Get("byteLength").Int()
	dst := make([]byte, size)
	js.CopyBytesToGo(dst, v)
	return dst, nil
}

func getStringFromJs(args []js.Value, i int) (string, error) {
	v, err := argAt(args, i)
	if err != nil {
		return "", err
	}
	if v.Type() != js.TypeString {
		return "", errors.Errorf("argument %d: expected string, got %s", i, v.Type())
	}
	return v.String(), nil
}

// jsInput turns a js string or Uint8Array into something value.DecryptInput accepts.
func jsInput(args []js.Value, i int) (any, error) {
	v, err := argAt(args, i)
	if err != nil {
		return nil, err
	}
	if isUint8Array(v) {
		return getBytesFromJs(args, i)
	}
	if v.Type() == js.TypeString {
		return v.String(), nil
	}
	return nil, errors.Wrapf(value.ErrUnsupportedInput, "js %s", v.Type())
}

// jsKey returns the optional hex key argument.
func jsKey(args []js.Value, i int) (value.Key, error) {
	var s string
	if len(args) > i && args[i].Type() == js.TypeString {
		s = args[i].String()
	}
	return resolveKey(s, "")
}

func xmlEncode(this js.Value, args []js.Value) any {
	return guard("xmlEncode", func() (any, error) {
		data, err := getBytesFromJs(args, 0)
		if err != nil {
			return nil, err
		}
		out, err := xmlcfg.Encode(data, xmlcfg.DefaultName)
		return string(out), err
	})
}

func xmlDecode(this js.Value, args []js.Value) any {
	return guard("xmlDecode", func() (any, error) {
		data, err := getBytesFromJs(args, 0)
		if err != nil {
			return nil, err
		}
		out, err := xmlcfg.Decode(data)
		return string(out), err
	})
}

func xmlValues(this js.Value, args []js.Value) any {
	return guard("xmlValues", func() (any, error) {
		data, err := getBytesFromJs(args, 0)
		if err != nil {
			return nil, err
		}
		key, err := jsKey(args, 1)
		if err != nil {
			return nil, err
		}
		out, _, err := xmlcfg.DecryptValues(data, key)
		return string(out), err
	})
}

func valueEncode(this js.Value, args []js.Value) any {
	return guard("valueEncode", func() (any, error) {
		plain, err := getStringFromJs(args, 0)
		if err != nil {
			return nil, err
		}
		key, err := jsKey(args, 1)
		if err != nil {
			return nil, err
		}
		iv, err := value.NewIV(rand.Reader)
		if err != nil {
			return nil, err
		}
		return value.Encrypt(plain, key, iv)
	})
}

func valueDecode(this js.Value, args []js.Value) any {
	return guard("valueDecode", func() (any, error) {
		in, err := jsInput(args, 0)
		if err != nil {
			return nil, err
		}
		key, err := jsKey(args, 1)
		if err != nil {
			return nil, err
		}
		return value.DecryptInput(in, key)
	})
}

func main() {
	log.SetLevel(log.WarnLevel)

	js.Global().Set("xmlEncode", js.FuncOf(xmlEncode))
	js.Global().Set("xmlDecode", js.FuncOf(xmlDecode))
	js.Global().Set("xmlValues", js.FuncOf(xmlValues))
	js.Global().Set("valueEncode", js.FuncOf(valueEncode))
	js.Global().Set("valueDecode", js.FuncOf(valueDecode))

	select {}
}

package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/atheler/klang-sub000/internal/ctxlog"
)

// Args holds the evaluated arguments of one block declaration, keyed by
// argument name.
type Args map[string]cty.Value

// Float64 returns the named argument as a float64, or fallback when absent.
func (a Args) Float64(name string, fallback float64) (float64, error) {
	val, ok := a[name]
	if !ok {
		return fallback, nil
	}
	var out float64
	if err := decodeValue(val, &out); err != nil {
		return 0, fmt.Errorf("argument '%s': %w", name, err)
	}
	return out, nil
}

// Decode populates the provided Go struct from the argument map using
// reflection. Fields are matched by their `klang` tag, falling back to the
// field name. Fields without a matching argument keep whatever value the caller
// pre-filled, so factories set defaults before decoding. Arguments that match
// no field are rejected to catch typos in patch files.
func (a Args) Decode(ctx context.Context, target any) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting argument decoding.", "count", len(a))

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer")
	}
	structVal = structVal.Elem()
	if structVal.Kind() != reflect.Struct {
		return fmt.Errorf("decode target must point to a struct, got %s", structVal.Kind())
	}
	structType := structVal.Type()

	known := make(map[string]struct{}, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := structVal.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		lookupName := field.Name
		if tag := field.Tag.Get("klang"); tag != "" {
			lookupName = strings.Split(tag, ",")[0]
		}
		if lookupName == "-" {
			continue
		}
		known[lookupName] = struct{}{}

		val, provided := a[lookupName]
		if !provided {
			continue
		}

		if err := decodeValue(val, fieldVal.Addr().Interface()); err != nil {
			return fmt.Errorf("failed to decode argument '%s': %w", lookupName, err)
		}
	}

	var unknown []string
	for name := range a {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unsupported argument(s): %s", strings.Join(unknown, ", "))
	}

	logger.Debug("Finished argument decoding successfully.")
	return nil
}

// decodeValue handles the conversion and decoding of a cty.Value into a Go
// pointer, converting between compatible types where needed.
func decodeValue(val cty.Value, goVal any) error {
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		// No implied type for this Go shape; let gocty attempt it directly.
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}

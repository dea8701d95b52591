package exercise

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/npillmayer/wording/quantity"
)

// generateVariable draws a value for a variable: a quantity.Number for
// scalars, a string for texts.
func generateVariable(rng *rand.Rand, v Variable) (interface{}, error) {
	if v.Fixed != nil {
		return convertFixed(v)
	}
	switch v.Kind {
	case "", KindScalar:
		return genScalar(rng, v)
	case KindText:
		return genText(rng, v)
	}
	return nil, fmt.Errorf("unknown kind: %s", v.Kind)
}

func convertFixed(v Variable) (interface{}, error) {
	if v.Kind == KindText {
		return fmt.Sprint(v.Fixed), nil
	}
	return quantity.ToNumber(v.Fixed)
}

func genScalar(rng *rand.Rand, v Variable) (interface{}, error) {
	g, ok := v.Generator["rule"].(string)
	if !ok {
		return nil, errors.New("scalar generator rule missing")
	}
	switch g {
	case "range":
		min := int64(defaultInt(v.Generator, "min", 1))
		max := int64(defaultInt(v.Generator, "max", 10))
		if max < min {
			return nil, fmt.Errorf("range [%d,%d] is empty", min, max)
		}
		return quantity.IntNumber(rng.Int63n(max-min+1) + min), nil
	case "from_set":
		set, ok := v.Generator["set"].([]interface{})
		if !ok || len(set) == 0 {
			return nil, errors.New("from_set empty")
		}
		return quantity.ToNumber(set[rng.Intn(len(set))])
	case "decimal":
		min := int64(defaultInt(v.Generator, "min", 0))
		max := int64(defaultInt(v.Generator, "max", 10))
		places := defaultInt(v.Generator, "places", 1)
		if max < min || places < 0 {
			return nil, fmt.Errorf("invalid decimal generator [%d,%d] with %d places", min, max, places)
		}
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil).Int64()
		n := rng.Int63n((max-min)*scale+1) + min*scale
		return quantity.NewNumber(big.NewRat(n, scale)), nil
	}
	return nil, fmt.Errorf("unsupported scalar generator: %s", g)
}

func genText(rng *rand.Rand, v Variable) (interface{}, error) {
	g, _ := v.Generator["rule"].(string)
	switch g {
	case "", "from_set":
		set, ok := v.Generator["set"].([]interface{})
		if !ok || len(set) == 0 {
			return nil, errors.New("from_set empty")
		}
		return fmt.Sprint(set[rng.Intn(len(set))]), nil
	}
	return nil, fmt.Errorf("unsupported text generator: %s", g)
}

func defaultInt(m map[string]interface{}, key string, def int) int {
	if m == nil {
		return def
	}
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case int64:
			return int(v)
		}
	}
	return def
}

package indicator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MAType selects the moving average an indicator delegates to.
type MAType int

const (
	MATypeSimple MAType = iota
	MATypeExponential
	MATypeWeighted
)

var maTypeNames = map[MAType]string{
	MATypeSimple:      "SMA",
	MATypeExponential: "EMA",
	MATypeWeighted:    "WMA",
}

func (t MAType) String() string {
	if name, ok := maTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MAType(%d)", int(t))
}

func (t MAType) Valid() bool {
	_, ok := maTypeNames[t]
	return ok
}

func ParseMAType(s string) (MAType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SMA", "SIMPLE":
		return MATypeSimple, nil
	case "EMA", "EWMA", "EXPONENTIAL":
		return MATypeExponential, nil
	case "WMA", "WEIGHTED":
		return MATypeWeighted, nil
	}

	return MATypeSimple, fmt.Errorf("unsupported moving average type: %s", s)
}

func (t MAType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *MAType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := ParseMAType(s)
	if err != nil {
		return err
	}

	*t = v
	return nil
}

func (t MAType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *MAType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	v, err := ParseMAType(s)
	if err != nil {
		return err
	}

	*t = v
	return nil
}

// ValidMAType checks the selector is one of the known moving averages.
func ValidMAType(name string, t MAType) error {
	if !t.Valid() {
		return fmt.Errorf("`%s` is not a supported moving average type: %s", name, t)
	}
	return nil
}

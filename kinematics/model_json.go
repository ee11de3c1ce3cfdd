package kinematics

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ErrNoModelInformation is used when there is no model information.
var ErrNoModelInformation = errors.New("no model information")

// ModelConfigJSON represents all supported fields in an arm kinematics JSON file.
type ModelConfigJSON struct {
	Name         string    `json:"name"`
	KinParamType string    `json:"kinematic_param_type,omitempty"`
	LinkLengths  []float64 `json:"link_lengths"`
}

// UnmarshalModelJSON will parse the given JSON data into an arm model.
func UnmarshalModelJSON(jsonData []byte) (*Arm, error) {
	// empty data probably means that the component has no model information
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}

	m := &ModelConfigJSON{}
	if err := json.Unmarshal(jsonData, m); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return m.ParseConfig()
}

// ParseConfig converts the ModelConfigJSON struct into an Arm.
func (cfg *ModelConfigJSON) ParseConfig() (*Arm, error) {
	switch cfg.KinParamType {
	case "DH", "":
	default:
		return nil, errors.Errorf("unsupported param type: %s, supported params are DH", cfg.KinParamType)
	}

	if len(cfg.LinkLengths) != len(DefaultLinkLengths) {
		return nil, errors.Errorf("need exactly %d link lengths, got %d", len(DefaultLinkLengths), len(cfg.LinkLengths))
	}
	var links LinkLengths
	copy(links[:], cfg.LinkLengths)
	return NewArm(links)
}

// ParseModelJSONFile will read a given file and then parse the contained JSON data.
func ParseModelJSONFile(filename string) (*Arm, error) {
	//nolint:gosec
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read json file")
	}
	return UnmarshalModelJSON(jsonData)
}

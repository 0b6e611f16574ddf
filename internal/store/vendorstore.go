package store

import (
	"fmt"
	"os"
	"path/filepath"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"

	"gopkg.in/yaml.v3"
)

// VendorStore persists the vendor-to-category map as a YAML file of
// string pairs, the same shape the learner and fuzzy matcher consume.
type VendorStore struct {
	path   string
	logger logging.Logger
}

// NewVendorStore creates a vendor store backed by the given YAML file.
func NewVendorStore(path string, logger logging.Logger) *VendorStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &VendorStore{path: path, logger: logger}
}

// LoadVendors reads the persisted vendor map. Missing or corrupt files
// yield an empty map. Entries with empty categories are dropped: the
// vendor map only ever admits non-empty category values.
func (s *VendorStore) LoadVendors() (models.VendorMap, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.path).Debug("Vendor file not found, starting with empty vendor map")
			return models.VendorMap{}, nil
		}
		s.logger.WithError(err).WithField(logging.FieldFile, s.path).Warn("Could not read vendor file, starting with empty vendor map")
		return models.VendorMap{}, nil
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, s.path).Warn("Could not parse vendor file, starting with empty vendor map")
		return models.VendorMap{}, nil
	}

	vendors := make(models.VendorMap, len(raw))
	for phrase, category := range raw {
		vendors.Add(phrase, category)
	}

	s.logger.WithField(logging.FieldCount, len(vendors)).Debug("Loaded vendor mappings")
	return vendors, nil
}

// SaveVendors rewrites the vendor map. Write failures surface to the
// caller for the same reason rule-store failures do.
func (s *VendorStore) SaveVendors(vendors models.VendorMap) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating vendor directory: %w", err)
	}

	data, err := yaml.Marshal(map[string]string(vendors))
	if err != nil {
		return fmt.Errorf("error marshaling vendor mappings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing vendor file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(vendors)},
	).Debug("Saved vendor mappings")
	return nil
}

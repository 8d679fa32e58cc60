package storage

import (
	"encoding/json"
	"errors"

	"fitscape/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeLandscape(record model.LandscapeRecord) ([]byte, error) {
	return json.Marshal(record)
}

func DecodeLandscape(data []byte) (model.LandscapeRecord, error) {
	var record model.LandscapeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.LandscapeRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.LandscapeRecord{}, err
	}
	return record, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}

package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nxrts/nexus-finance/internal/models"
	"github.com/nxrts/nexus-finance/internal/types"
)

// envelope is the persisted shape of a collection blob: the records
// plus the schema version they were written with.
//
// The browser-era data was a bare JSON array without a version field;
// such blobs are treated as version 0 and migrated forward on first
// read, then persisted once in migrated form.
type envelope struct {
	Version int              `json:"version"`
	Records []map[string]any `json:"records"`
}

// A migration is a pure forward transformation of the raw records of
// one collection. Migrations are ordered; a blob at version n has the
// steps n, n+1, ... applied. Every step must be idempotent.
type migration func(record map[string]any)

var incomeMigrations = []migration{
	migrateIncomeV1,
}

var expenseMigrations = []migration{
	migrateExpenseV1,
}

// Categories and users have never changed shape.
var (
	categoryMigrations []migration
	userMigrations     []migration
)

// migrateIncomeV1 renames the legacy clientName field to source and
// collapses the legacy three-valued status enum into Received/Pending.
func migrateIncomeV1(record map[string]any) {
	if clientName, ok := record["clientName"]; ok {
		if _, ok := record["source"]; !ok {
			record["source"] = clientName
		}
		delete(record, "clientName")
	}

	status, _ := record["status"].(string)
	record["status"] = string(models.NormalizeIncomeStatus(status))
}

// migrateExpenseV1 backfills a missing invoiceId from the record's
// year and id, folds the legacy vendor field into the description and
// normalizes the status enum. Cancelled records are kept in storage,
// filtering them is a read concern.
func migrateExpenseV1(record map[string]any) {
	id, _ := record["id"].(string)

	if invoiceID, ok := record["invoiceId"].(string); !ok || invoiceID == "" {
		year := 0
		if date, ok := record["date"].(string); ok {
			if d, err := types.ParseDate(date); err == nil {
				year = d.Year()
			}
		}

		idPart := id
		if len(idPart) > 3 {
			idPart = idPart[:3]
		}

		record["invoiceId"] = fmt.Sprintf("#EXP-%d-%s", year, strings.ToUpper(idPart))
	}

	if vendor, ok := record["vendor"].(string); ok {
		description, _ := record["description"].(string)

		switch {
		case vendor == "" || strings.Contains(description, vendor):
			// nothing to fold
		case description == "":
			record["description"] = vendor
		default:
			record["description"] = vendor + " - " + description
		}

		delete(record, "vendor")
	}

	status, _ := record["status"].(string)
	record["status"] = string(models.NormalizeExpenseStatus(status))
}

// decodeEnvelope parses a collection blob. Bare arrays are version 0.
func decodeEnvelope(raw []byte) (envelope, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return envelope{}, nil
	}

	if trimmed[0] == '[' {
		var records []map[string]any
		if err := unmarshalNumberPreserving(trimmed, &records); err != nil {
			return envelope{}, err
		}

		return envelope{Version: 0, Records: records}, nil
	}

	var e envelope
	if err := unmarshalNumberPreserving(trimmed, &e); err != nil {
		return envelope{}, err
	}

	return e, nil
}

// unmarshalNumberPreserving decodes JSON keeping number literals as
// json.Number so that amounts survive a migration write-back
// byte-for-byte.
func unmarshalNumberPreserving(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

// migrate applies the outstanding migration steps to an envelope and
// reports whether anything changed.
func migrate(e *envelope, migrations []migration) bool {
	if e.Version >= len(migrations) {
		return false
	}

	for _, step := range migrations[e.Version:] {
		for _, record := range e.Records {
			step(record)
		}
	}

	e.Version = len(migrations)
	return true
}

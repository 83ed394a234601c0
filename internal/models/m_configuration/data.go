package m_configuration

import (
	"encoding/json"

	"cloud.google.com/go/spanner"
)

// BuildUpsertMap prepares a configuration row. Specs are stored as a JSON column.
func BuildUpsertMap(productID, configurationID string, position int64, name, description string,
	priceNum, priceDen int64, specs map[string]string, isDefault bool) map[string]interface{} {

	if specs == nil {
		specs = map[string]string{}
	}
	return map[string]interface{}{
		ColProductID:        productID,
		ColConfigurationID:  configurationID,
		ColPosition:         position,
		ColName:             name,
		ColDescription:      spanner.NullString{StringVal: description, Valid: description != ""},
		ColPriceNumerator:   priceNum,
		ColPriceDenominator: priceDen,
		ColSpecs:            spanner.NullJSON{Value: specs, Valid: true},
		ColIsDefault:        isDefault,
	}
}

func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}

func DeleteMutation(productID, configurationID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, configurationID})
}

func DeleteAllMutation(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID}.AsPrefix())
}

// DecodeSpecs reads the specs JSON column back into a map.
func DecodeSpecs(col spanner.NullJSON) (map[string]string, error) {
	out := map[string]string{}
	if !col.Valid || col.Value == nil {
		return out, nil
	}
	raw, err := json.Marshal(col.Value)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

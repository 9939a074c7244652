package feature

// FieldCount is the number of input features the model was trained with.
const FieldCount = 15

// Vector is a fully-validated set of model inputs.
type Vector struct {
	Feature0  float64 `json:"feature_0"`
	Feature1  float64 `json:"feature_1"`
	Feature2  float64 `json:"feature_2"`
	Feature3  float64 `json:"feature_3"`
	Feature4  float64 `json:"feature_4"`
	Feature5  float64 `json:"feature_5"`
	Feature6  float64 `json:"feature_6"`
	Feature7  float64 `json:"feature_7"`
	Feature8  float64 `json:"feature_8"`
	Feature9  float64 `json:"feature_9"`
	Feature10 float64 `json:"feature_10"`
	Feature11 float64 `json:"feature_11"`
	Feature12 float64 `json:"feature_12"`
	Feature13 float64 `json:"feature_13"`
	Feature14 float64 `json:"feature_14"`
}

// FieldNames returns the feature field names in their canonical order.
func FieldNames() [FieldCount]string {
	return [FieldCount]string{
		"feature_0", "feature_1", "feature_2", "feature_3", "feature_4",
		"feature_5", "feature_6", "feature_7", "feature_8", "feature_9",
		"feature_10", "feature_11", "feature_12", "feature_13", "feature_14",
	}
}

// Values returns the feature values in the same order as FieldNames.
func (v Vector) Values() [FieldCount]float64 {
	return [FieldCount]float64{
		v.Feature0, v.Feature1, v.Feature2, v.Feature3, v.Feature4,
		v.Feature5, v.Feature6, v.Feature7, v.Feature8, v.Feature9,
		v.Feature10, v.Feature11, v.Feature12, v.Feature13, v.Feature14,
	}
}

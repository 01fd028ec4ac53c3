package entity

// BloodType tipo de sangre (combinaciones ABO × Rh).
type BloodType string

const (
	BloodAPositive  BloodType = "A_POSITIVE"
	BloodANegative  BloodType = "A_NEGATIVE"
	BloodBPositive  BloodType = "B_POSITIVE"
	BloodBNegative  BloodType = "B_NEGATIVE"
	BloodABPositive BloodType = "AB_POSITIVE"
	BloodABNegative BloodType = "AB_NEGATIVE"
	BloodOPositive  BloodType = "O_POSITIVE"
	BloodONegative  BloodType = "O_NEGATIVE"
)

// BloodTypes lista de los 8 tipos válidos, en orden ABO/Rh.
var BloodTypes = []BloodType{
	BloodAPositive, BloodANegative,
	BloodBPositive, BloodBNegative,
	BloodABPositive, BloodABNegative,
	BloodOPositive, BloodONegative,
}

// IsValid indica si el valor corresponde a uno de los 8 tipos enumerados.
func (bt BloodType) IsValid() bool {
	for _, t := range BloodTypes {
		if bt == t {
			return true
		}
	}
	return false
}

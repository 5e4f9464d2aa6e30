package treatment

// Parameter identifies a tracked water-quality parameter.
type Parameter string

const (
	ParamPH              Parameter = "pH"
	ParamTSS             Parameter = "TSS"
	ParamTDS             Parameter = "TDS"
	ParamCOD             Parameter = "COD"
	ParamBOD             Parameter = "BOD"
	ParamConductivity    Parameter = "Conductivity"
	ParamTurbidity       Parameter = "Turbidity"
	ParamAlkalinity      Parameter = "Alkalinity"
	ParamTotalNitrates   Parameter = "Total Nitrates"
	ParamTotalPhosphates Parameter = "Total Phosphates"
	ParamTotalColor      Parameter = "Total Color"
	ParamTotalZinc       Parameter = "Total Zinc"
)

// Parameters lists every tracked parameter in canonical display order.
var Parameters = []Parameter{
	ParamPH,
	ParamTSS,
	ParamTDS,
	ParamCOD,
	ParamBOD,
	ParamConductivity,
	ParamTurbidity,
	ParamAlkalinity,
	ParamTotalNitrates,
	ParamTotalPhosphates,
	ParamTotalColor,
	ParamTotalZinc,
}

// Unit returns the measurement unit for a parameter.
func (p Parameter) Unit() string {
	switch p {
	case ParamPH:
		return "pH scale"
	case ParamConductivity:
		return "µS/cm"
	case ParamTurbidity:
		return "NTU"
	case ParamAlkalinity:
		return "mg/L as CaCO3"
	case ParamTotalColor:
		return "HU"
	default:
		return "mg/L"
	}
}

// Vector maps every tracked parameter to its current concentration.
type Vector map[Parameter]float64

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for p, value := range v {
		out[p] = value
	}
	return out
}

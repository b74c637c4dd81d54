package bookings

// ServiceType es el código de plan elegido en el formulario.
// @Enum 30min-single, 1hour-single, 30min-monthly, 1hour-monthly
type ServiceType string

const (
	Service30MinSingle  ServiceType = "30min-single"
	Service1HourSingle  ServiceType = "1hour-single"
	Service30MinMonthly ServiceType = "30min-monthly"
	Service1HourMonthly ServiceType = "1hour-monthly"
)

// Plan describe un plan del catálogo. PriceZAR en rand, sin centavos.
type Plan struct {
	Code     ServiceType
	Label    string
	PriceZAR int
	Monthly  bool
}

var catalog = []Plan{
	{Code: Service30MinSingle, Label: "30 Minutes", PriceZAR: 50},
	{Code: Service1HourSingle, Label: "1 Hour", PriceZAR: 100},
	{Code: Service30MinMonthly, Label: "Monthly 30 Minutes", PriceZAR: 1200, Monthly: true},
	{Code: Service1HourMonthly, Label: "Monthly 1 Hour", PriceZAR: 1800, Monthly: true},
}

// Plans devuelve el catálogo en orden de presentación.
func Plans() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

// PlanCodes lista los códigos válidos en orden de catálogo.
func PlanCodes() []string {
	out := make([]string, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, string(p.Code))
	}
	return out
}

func (s ServiceType) Valid() bool {
	_, ok := LookupPlan(s)
	return ok
}

func LookupPlan(s ServiceType) (Plan, bool) {
	for _, p := range catalog {
		if p.Code == s {
			return p, true
		}
	}
	return Plan{}, false
}

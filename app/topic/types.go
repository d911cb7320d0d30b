package topic

// Sport is the category assigned to a stored article.
type Sport string

const (
	SportMMA    Sport = "MMA"
	SportBoxing Sport = "Boxing"
	SportMixed  Sport = "Mixed"
	SportOther  Sport = "Other"
)

// Keywords holds the substring lists driving the on-topic predicate and the
// sport classifier. Loaded once at startup and treated as immutable.
type Keywords struct {
	MMA     []string
	Boxing  []string
	StopURL []string
}

// DefaultKeywords returns the built-in keyword sets, tuned for the
// Spanish-language sources in the default registry.
func DefaultKeywords() Keywords {
	return Keywords{
		MMA: []string{
			"ufc", "mma", "topuria", "makhachev", "pereira", "volkanovski",
			"fight night", "octagono", "octágono",
		},
		Boxing: []string{
			"boxeo", "wbc", "wba", "ibf", "wbo",
			"peso pluma", "peso welter", "peso medio",
			"canelo", "inoue", "tyson", "crawford", "usyk", "fury",
		},
		StopURL: []string{
			"/futbol/", "/tenis/", "/baloncesto/", "/ciclismo/", "/juegos-olimpicos/",
			"/snooker/", "/motor/", "/formula-1/", "/motogp/", "/golf/", "/rugby/",
			"/calendario", "/resultados", "/medallero", "/equipo", "/deportes/",
			"/suscrib", "/registro", "/inicio", "/ver", "/para-ti",
		},
	}
}

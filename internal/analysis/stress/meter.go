package stress

// Gauge 描述压力计上某一级的展示信息。
type Gauge struct {
	Level   Level  `json:"level"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Emoji   string `json:"emoji"`
	Percent int    `json:"percent"`
}

var gauges = map[Level]Gauge{
	None:     {Level: None, Name: None.String(), Color: "#48bb78", Emoji: "😊"},
	Low:      {Level: Low, Name: Low.String(), Color: "#48bb78", Emoji: "😊"},
	Medium:   {Level: Medium, Name: Medium.String(), Color: "#ed8936", Emoji: "😐"},
	High:     {Level: High, Name: High.String(), Color: "#e53e3e", Emoji: "😰"},
	Critical: {Level: Critical, Name: Critical.String(), Color: "#9b2c2c", Emoji: "😨"},
}

// GaugeFor 返回 l 的压力计读数，填充比例为 l 相对 Critical 的百分比。
func GaugeFor(l Level) Gauge {
	g := gauges[Clamp(int(l))]
	g.Percent = int(g.Level) * 100 / int(Critical)
	return g
}

// Meter 按升序返回完整图例。
func Meter() []Gauge {
	out := make([]Gauge, 0, len(Levels))
	for _, l := range Levels {
		out = append(out, GaugeFor(l))
	}
	return out
}

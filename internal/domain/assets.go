package domain

// Animation assets hosted on LottieFiles. Conditions missing from a table,
// including ConditionUnknown, fall back to the Clear entry.
var weatherAnimations = map[Condition]string{
	ConditionClear:        "https://assets4.lottiefiles.com/packages/lf20_ukvg3jub.json",
	ConditionClouds:       "https://assets10.lottiefiles.com/private_files/lf30_mn53fgpa.json",
	ConditionRain:         "https://assets2.lottiefiles.com/packages/lf20_jmBauI.json",
	ConditionThunderstorm: "https://assets2.lottiefiles.com/packages/lf20_iwmd6pyr.json",
	ConditionDrizzle:      "https://assets1.lottiefiles.com/packages/lf20_nazjrc1e.json",
	ConditionSnow:         "https://assets7.lottiefiles.com/packages/lf20_oGlWy5.json",
	ConditionMist:         "https://assets3.lottiefiles.com/packages/lf20_xx9fzzxl.json",
	ConditionHaze:         "https://assets10.lottiefiles.com/private_files/lf30_obidsi0t.json",
	ConditionFog:          "https://assets3.lottiefiles.com/packages/lf20_xx9fzzxl.json",
	ConditionSmoke:        "https://assets10.lottiefiles.com/packages/lf20_T9zVG5.json",
	ConditionDust:         "https://assets2.lottiefiles.com/packages/lf20_Stt1R1.json",
	ConditionSand:         "https://assets2.lottiefiles.com/packages/lf20_Stt1R1.json",
	ConditionAsh:          "https://assets2.lottiefiles.com/packages/lf20_tjsjre.json",
	ConditionSquall:       "https://assets2.lottiefiles.com/packages/lf20_gbfwtkzw.json",
	ConditionTornado:      "https://assets3.lottiefiles.com/packages/lf20_u4yrau.json",
}

var plantAnimations = map[Condition]string{
	ConditionClear:        "https://assets5.lottiefiles.com/packages/lf20_tll0j4bb.json",
	ConditionClouds:       "https://assets5.lottiefiles.com/packages/lf20_k8nL1n.json",
	ConditionRain:         "https://assets5.lottiefiles.com/packages/lf20_8xlcgjiz.json",
	ConditionDrizzle:      "https://assets5.lottiefiles.com/packages/lf20_8xlcgjiz.json",
	ConditionThunderstorm: "https://assets2.lottiefiles.com/packages/lf20_gbfwtkzw.json",
	ConditionSnow:         "https://assets4.lottiefiles.com/packages/lf20_6ijgwtux.json",
	ConditionFog:          "https://assets10.lottiefiles.com/packages/lf20_lnhvvs.json",
	ConditionHaze:         "https://assets10.lottiefiles.com/packages/lf20_lnhvvs.json",
	ConditionSmoke:        "https://assets10.lottiefiles.com/packages/lf20_lnhvvs.json",
	ConditionDust:         "https://assets10.lottiefiles.com/packages/lf20_lnhvvs.json",
	ConditionTornado:      "https://assets3.lottiefiles.com/packages/lf20_2sl5dckk.json",
}

const defaultBackground = "#87CEEB"

var backgrounds = map[Condition]string{
	ConditionClear:        "#FFD966",
	ConditionClouds:       "#B0BEC5",
	ConditionRain:         "#5C7A99",
	ConditionThunderstorm: "#4A4E69",
	ConditionDrizzle:      "#8FA9C2",
	ConditionSnow:         "#E8F1F8",
	ConditionMist:         "#CFD8DC",
	ConditionHaze:         "#D7CCC8",
	ConditionFog:          "#CFD8DC",
	ConditionSmoke:        "#A1887F",
	ConditionDust:         "#D2B48C",
	ConditionSand:         "#E0C9A6",
	ConditionAsh:          "#9E9E9E",
	ConditionSquall:       "#607D8B",
	ConditionTornado:      "#546E7A",
}

// WeatherAnimationURL returns the weather animation for a condition.
func WeatherAnimationURL(c Condition) string {
	return lookupOrClear(weatherAnimations, c)
}

// PlantAnimationURL returns the plant animation for a condition.
func PlantAnimationURL(c Condition) string {
	return lookupOrClear(plantAnimations, c)
}

// BackgroundColor returns the hex panel colour for a condition.
func BackgroundColor(c Condition) string {
	if v, ok := backgrounds[c]; ok {
		return v
	}
	return defaultBackground
}

func lookupOrClear(m map[Condition]string, c Condition) string {
	if v, ok := m[c]; ok {
		return v
	}
	return m[ConditionClear]
}

package identify

import "math/rand"

// 隨辨識結果附帶的植物環境小知識
var ecoFacts = []string{
	"A single tree can absorb up to 48 pounds of carbon dioxide per year.",
	"Plants produce approximately 70% of the Earth's oxygen.",
	"The Amazon rainforest produces 20% of the world's oxygen supply.",
	"One acre of trees can remove up to 2.6 tons of carbon dioxide per year.",
	"Plants help reduce urban heat by providing shade and cooling through transpiration.",
	"Indoor plants can remove up to 87% of air toxins in 24 hours.",
	"Phytoplankton in the ocean produce more oxygen than all land plants combined.",
	"A mature tree can provide a day's oxygen supply for up to 4 people.",
	"Plants help prevent soil erosion and maintain water quality.",
	"Urban trees can reduce air conditioning costs by up to 30%.",
}

// randomEcoFact 隨機取一則環境小知識
func randomEcoFact() string {
	return ecoFacts[rand.Intn(len(ecoFacts))]
}

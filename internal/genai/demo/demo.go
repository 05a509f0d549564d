// Package demo supplies the offline fallback content used when no AI
// credential is configured. Nothing in this package touches the network.
package demo

import (
	"strings"

	"github.com/krishimitra/krishimitra/internal/domain"
	"github.com/krishimitra/krishimitra/internal/i18n"
)

const pestResponse = "For effective pest control in Karnataka:\n\n" +
	"1. Use neem-based organic pesticides (Azadirachtin 0.15%)\n" +
	"2. Install pheromone traps for early detection\n" +
	"3. Practice crop rotation to break pest cycles\n" +
	"4. Maintain proper field sanitation\n" +
	"5. Use biological control agents like Trichogramma\n\n" +
	"For severe infestations, consider Imidacloprid 17.8% SL at 0.3ml/liter. Always follow safety guidelines."

const monsoonResponse = "Monsoon farming tips for Karnataka:\n\n" +
	"1. Ensure proper drainage channels to prevent waterlogging\n" +
	"2. Plant monsoon-friendly crops: Rice, Ragi, Jowar\n" +
	"3. Apply fungicides preventively for disease control\n" +
	"4. Store fertilizers in dry places\n" +
	"5. Check weather forecasts regularly\n" +
	"6. Harvest mature crops before heavy rains\n\n" +
	"Best time to prepare fields: Early June before monsoon onset."

const rotationResponse = "Crop rotation recommendations for Karnataka:\n\n" +
	"Kharif Season (June-Oct):\n" +
	"- Rice -> Pulses (Tur/Green gram)\n" +
	"- Cotton -> Jowar/Bajra\n" +
	"- Sugarcane -> Vegetables\n\n" +
	"Rabi Season (Oct-Feb):\n" +
	"- Wheat -> Sunflower\n" +
	"- Groundnut -> Bengal gram\n\n" +
	"Benefits: improves soil fertility, reduces pest buildup, better water utilization, increased yields."

const fertilizerResponse = "Fertilizer recommendations:\n\n" +
	"For Rice:\n" +
	"- Basal: 60kg Urea + 125kg DAP per acre\n" +
	"- Top dress: 40kg Urea at 30 days\n\n" +
	"For Cotton:\n" +
	"- 50kg Urea + 100kg DAP + 25kg MOP per acre\n\n" +
	"Organic alternatives:\n" +
	"- Vermicompost: 2-3 tons/acre\n" +
	"- Neem cake: 200kg/acre\n" +
	"- Green manure with Sesbania\n\n" +
	"Soil test before application. NPK ratio matters!"

var defaultResponse = map[i18n.Language]string{
	i18n.English: "I'm your AI farming advisor for Karnataka! I can help with:\n\n" +
		"- Crop disease identification\n" +
		"- Pest management solutions\n" +
		"- Fertilizer recommendations\n" +
		"- Irrigation scheduling\n" +
		"- Market price trends\n" +
		"- Government schemes\n" +
		"- Weather-based advice\n\n" +
		"Ask me anything about farming!",
	i18n.Hindi: "मैं कर्नाटक के लिए आपका AI कृषि सलाहकार हूं! मैं फसल रोग पहचान, कीट प्रबंधन, " +
		"उर्वरक सिफारिशें, सिंचाई, बाजार मूल्य और मौसम आधारित सलाह में मदद कर सकता हूं। " +
		"खेती के बारे में कुछ भी पूछें!",
	i18n.Kannada: "ನಾನು ಕರ್ನಾಟಕಕ್ಕಾಗಿ ನಿಮ್ಮ AI ಕೃಷಿ ಸಲಹೆಗಾರ! ಬೆಳೆ ರೋಗ ಗುರುತಿಸುವಿಕೆ, ಕೀಟ ನಿರ್ವಹಣೆ, " +
		"ಗೊಬ್ಬರ ಶಿಫಾರಸುಗಳು, ನೀರಾವರಿ, ಮಾರುಕಟ್ಟೆ ದರಗಳು ಮತ್ತು ಹವಾಮಾನ ಆಧಾರಿತ ಸಲಹೆಯಲ್ಲಿ ನಾನು ಸಹಾಯ ಮಾಡಬಲ್ಲೆ. " +
		"ಕೃಷಿಯ ಬಗ್ಗೆ ಏನನ್ನಾದರೂ ಕೇಳಿ!",
}

// ChatResponse routes a question to a canned answer by keyword. Routing is
// case-insensitive and deterministic; unmatched questions get a localised
// capability summary.
func ChatResponse(lang i18n.Language, question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "pest") || strings.Contains(q, "insect"):
		return pestResponse
	case strings.Contains(q, "monsoon") || strings.Contains(q, "rain"):
		return monsoonResponse
	case strings.Contains(q, "rotation") || strings.Contains(q, "crop cycle"):
		return rotationResponse
	case strings.Contains(q, "fertilizer") || strings.Contains(q, "nutrient"):
		return fertilizerResponse
	default:
		if s, ok := defaultResponse[lang]; ok {
			return s
		}
		return defaultResponse[i18n.English]
	}
}

// DiseaseReport returns the fixed scan result shown when no credential is
// configured.
func DiseaseReport() *domain.DiseaseReport {
	return &domain.DiseaseReport{
		DiseaseName: "Bacterial Leaf Blight",
		Confidence:  92.5,
		CropType:    "Rice",
		Severity:    domain.SeverityModerate,
		Symptoms: []string{
			"Water-soaked lesions on leaves",
			"Yellow to white stripes along leaf veins",
			"Wilting of seedlings in severe cases",
			"Bacterial ooze visible in morning dew",
		},
		Treatment: domain.Treatment{
			Organic: []string{
				"Remove and destroy infected plant parts",
				"Apply neem oil spray (5ml per liter of water)",
				"Use copper-based fungicides",
				"Maintain proper field drainage",
			},
			Chemical: []string{
				"Spray Streptocycline (100 ppm) + Copper Oxychloride (0.3%)",
				"Apply Plantomycin at 0.1% concentration",
				"Use Zinc Sulphate spray (0.25%) for nutrient balance",
			},
		},
		Prevention: []string{
			"Use disease-resistant rice varieties",
			"Practice crop rotation with non-host crops",
			"Avoid excessive nitrogen fertilizer",
			"Maintain optimal plant spacing for air circulation",
			"Remove weed hosts that harbor bacteria",
		},
	}
}

package seed

import "mgnrega-dash/internal/models"

// Districts is the fixed Karnataka reference set seeded on first start.
var Districts = []models.District{
	{ID: "KA01", NameEN: "Bagalkot", NameKN: "ಬಾಗಲಕೋಟೆ", Feature: "Red soil", Coordinates: [2]float64{16.1747, 75.6947}},
	{ID: "KA02", NameEN: "Bangalore Rural", NameKN: "ಬೆಂಗಳೂರು ಗ್ರಾಮಾಂತರ", Feature: "Silk production", Coordinates: [2]float64{13.1367, 77.5847}},
	{ID: "KA03", NameEN: "Bangalore Urban", NameKN: "ಬೆಂಗಳೂರು ನಗರ", Feature: "IT Hub", Coordinates: [2]float64{12.9716, 77.5946}},
	{ID: "KA04", NameEN: "Belgaum", NameKN: "ಬೆಳಗಾವಿ", Feature: "Sugarcane", Coordinates: [2]float64{15.8497, 74.4977}},
	{ID: "KA05", NameEN: "Bellary", NameKN: "ಬಳ್ಳಾರಿ", Feature: "Iron ore", Coordinates: [2]float64{15.1394, 76.9214}},
	{ID: "KA06", NameEN: "Bidar", NameKN: "ಬೀದರ್", Feature: "Heritage monuments", Coordinates: [2]float64{17.9129, 77.5199}},
	{ID: "KA07", NameEN: "Chamarajanagar", NameKN: "ಚಾಮರಾಜನಗರ", Feature: "Bandipur forest", Coordinates: [2]float64{11.9236, 76.9395}},
	{ID: "KA08", NameEN: "Chikkaballapur", NameKN: "ಚಿಕ್ಕಬಳ್ಳಾಪುರ", Feature: "Nandi Hills", Coordinates: [2]float64{13.4355, 77.7315}},
	{ID: "KA09", NameEN: "Chikkamagaluru", NameKN: "ಚಿಕ್ಕಮಗಳೂರು", Feature: "Coffee plantations", Coordinates: [2]float64{13.3161, 75.7720}},
	{ID: "KA10", NameEN: "Chitradurga", NameKN: "ಚಿತ್ರದುರ್ಗ", Feature: "Fort", Coordinates: [2]float64{14.2251, 76.3980}},
	{ID: "KA11", NameEN: "Dakshina Kannada", NameKN: "ದಕ್ಷಿಣ ಕನ್ನಡ", Feature: "Coastal region", Coordinates: [2]float64{12.8438, 75.2479}},
	{ID: "KA12", NameEN: "Davanagere", NameKN: "ದಾವಣಗೆರೆ", Feature: "Cotton", Coordinates: [2]float64{14.4644, 75.9217}},
	{ID: "KA13", NameEN: "Dharwad", NameKN: "ಧಾರವಾಡ", Feature: "Educational hub", Coordinates: [2]float64{15.4589, 75.0078}},
	{ID: "KA14", NameEN: "Gadag", NameKN: "ಗದಗ", Feature: "Temples", Coordinates: [2]float64{15.4292, 75.6339}},
	{ID: "KA15", NameEN: "Gulbarga", NameKN: "ಗುಲಬರ್ಗಾ", Feature: "Historical", Coordinates: [2]float64{17.3297, 76.8343}},
	{ID: "KA16", NameEN: "Hassan", NameKN: "ಹಾಸನ", Feature: "Hoysala temples", Coordinates: [2]float64{13.0053, 76.0965}},
	{ID: "KA17", NameEN: "Haveri", NameKN: "ಹಾವೇರಿ", Feature: "Handloom", Coordinates: [2]float64{14.7951, 75.3990}},
	{ID: "KA18", NameEN: "Kodagu", NameKN: "ಕೊಡಗು", Feature: "Coffee & spices", Coordinates: [2]float64{12.4244, 75.7382}},
	{ID: "KA19", NameEN: "Kolar", NameKN: "ಕೋಲಾರ", Feature: "Gold mines", Coordinates: [2]float64{13.1370, 78.1294}},
	{ID: "KA20", NameEN: "Koppal", NameKN: "ಕೊಪ್ಪಳ", Feature: "Agriculture", Coordinates: [2]float64{15.3520, 76.1540}},
	{ID: "KA21", NameEN: "Mandya", NameKN: "ಮಂಡ್ಯ", Feature: "Sugar capital", Coordinates: [2]float64{12.5244, 76.8952}},
	{ID: "KA22", NameEN: "Mysore", NameKN: "ಮೈಸೂರು", Feature: "Palace city", Coordinates: [2]float64{12.2958, 76.6394}},
	{ID: "KA23", NameEN: "Raichur", NameKN: "ರಾಯಚೂರು", Feature: "Thermal power", Coordinates: [2]float64{16.2076, 77.3463}},
	{ID: "KA24", NameEN: "Ramanagara", NameKN: "ರಾಮನಗರ", Feature: "Silk cocoons", Coordinates: [2]float64{12.7181, 77.2811}},
	{ID: "KA25", NameEN: "Shimoga", NameKN: "ಶಿವಮೊಗ್ಗ", Feature: "Jog Falls", Coordinates: [2]float64{13.9299, 75.5681}},
	{ID: "KA26", NameEN: "Tumkur", NameKN: "ತುಮಕೂರು", Feature: "Coconut", Coordinates: [2]float64{13.3392, 77.1006}},
	{ID: "KA27", NameEN: "Udupi", NameKN: "ಉಡುಪಿ", Feature: "Krishna temple", Coordinates: [2]float64{13.3409, 74.7421}},
	{ID: "KA28", NameEN: "Uttara Kannada", NameKN: "ಉತ್ತರ ಕನ್ನಡ", Feature: "Western Ghats", Coordinates: [2]float64{14.5196, 74.6896}},
	{ID: "KA29", NameEN: "Vijayapura", NameKN: "ವಿಜಯಪುರ", Feature: "Gol Gumbaz", Coordinates: [2]float64{16.8302, 75.7100}},
	{ID: "KA30", NameEN: "Yadgir", NameKN: "ಯಾದಗಿರಿ", Feature: "Agriculture", Coordinates: [2]float64{16.7700, 77.1387}},
}

// DistrictByID looks a district up in the reference set.
func DistrictByID(id string) (models.District, bool) {
	for _, d := range Districts {
		if d.ID == id {
			return d, true
		}
	}
	return models.District{}, false
}

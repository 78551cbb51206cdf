package services

import (
	"avoqado-web/internal/models"

	"github.com/shopspring/decimal"
)

// Margins added on top of the processor's base rates
var (
	MarginCredito = decimal.RequireFromString("0.2")
	MarginDebito  = decimal.RequireFromString("0.2")
	MarginAmex    = decimal.RequireFromString("0.3")
)

// initRateCategories returns the processor's base rates per business category.
// Order is significant: exact category matches are checked top to bottom.
func initRateCategories() []models.RateCategory {
	return []models.RateCategory{
		{Name: "Beneficiencia", Base: baseRates("1.00", "1.00", "3.30", "3.00")},
		{Name: "Educación básica", Base: baseRates("1.00", "1.00", "3.30", "3.00")},
		{Name: "Guarderías", Base: baseRates("1.00", "1.00", "3.30", "3.00")},
		{Name: "Médicos y dentistas", Base: baseRates("1.00", "1.00", "3.30", "3.00")},
		{Name: "Misceláneas", Base: baseRates("1.00", "1.00", "3.30", "3.00")},
		{Name: "Refacciones y ferreterías", Base: baseRates("1.00", "1.00", "3.30", "3.00")},
		{Name: "Salones de belleza", Base: baseRates("1.00", "1.00", "3.30", "3.00")},
		{Name: "Gasolineras", Base: baseRates("1.60", "1.05", "3.30", "3.00")},
		{Name: "Gobierno", Base: baseRates("1.70", "1.28", "3.30", "3.00")},
		{Name: "Estacionamientos", Base: baseRates("1.58", "1.55", "3.30", "3.00")},
		{Name: "Colegios y universidades", Base: baseRates("1.65", "1.28", "3.30", "3.00")},
		{Name: "Comida rápida", Base: baseRates("1.70", "1.35", "3.30", "3.00")},
		{Name: "Entretenimiento", Base: baseRates("1.70", "1.63", "3.30", "3.00")},
		{Name: "Peaje", Base: baseRates("1.70", "1.53", "3.30", "3.00")},
		{Name: "Transporte Terrestre de pasajeros", Base: baseRates("1.70", "1.65", "3.30", "3.00")},
		{Name: "Telecomunicaciones", Base: baseRates("1.98", "1.68", "3.30", "3.00")},
		{Name: "Transporte Aéreo", Base: baseRates("2.05", "1.28", "3.30", "3.00")},
		{Name: "Hospitales", Base: baseRates("2.05", "1.68", "3.30", "3.00")},
		{Name: "Otros", Base: baseRates("2.05", "1.68", "3.30", "3.00")},
		{Name: "Supermercados", Base: baseRates("2.05", "1.63", "3.30", "3.00")},
		{Name: "Ventas al menudeo", Base: baseRates("2.05", "1.68", "3.30", "3.00")},
		{Name: "Aseguradoras", Base: baseRates("2.08", "1.70", "3.30", "3.00")},
		{Name: "Agencias de viajes", Base: baseRates("2.20", "1.85", "3.30", "3.00")},
		{Name: "Hoteles", Base: baseRates("2.10", "1.63", "3.30", "3.00")},
		{Name: "Renta de autos", Base: baseRates("2.10", "1.64", "3.30", "3.00")},
		{Name: "Restaurantes", Base: baseRates("2.30", "1.68", "3.30", "3.00")},
		{Name: "Agregadores", Base: baseRates("2.30", "1.68", "3.30", "3.00")},
		{Name: "Farmacias", Base: baseRates("1.28", "1.00", "3.30", "3.00")},
		{Name: "Ventas al detalle (Retail)", Base: baseRates("1.53", "1.15", "3.30", "3.00")},
	}
}

// initSynonyms returns the free-text business names mapped to a category.
// Keys are already normalized. Order is significant for fuzzy matching.
func initSynonyms() []models.Synonym {
	return []models.Synonym{
		// Fitness
		{Key: "gimnasio", Familia: "Entretenimiento", Nota: "Clubes deportivos"},
		{Key: "gym", Familia: "Entretenimiento", Nota: "Clubes deportivos"},
		{Key: "crossfit", Familia: "Entretenimiento", Nota: "Clubes deportivos"},
		{Key: "yoga", Familia: "Entretenimiento", Nota: "Estudios de yoga"},
		{Key: "pilates", Familia: "Entretenimiento", Nota: "Estudios de pilates"},
		{Key: "fitness", Familia: "Entretenimiento", Nota: "Centros de fitness"},

		// Food & drinks
		{Key: "restaurante", Familia: "Restaurantes", Nota: "Restaurantes y cafeterías"},
		{Key: "cafeteria", Familia: "Restaurantes", Nota: "Cafeterías"},
		{Key: "cafe", Familia: "Restaurantes", Nota: "Cafés"},
		{Key: "taqueria", Familia: "Restaurantes", Nota: "Taquerías"},
		{Key: "pizzeria", Familia: "Restaurantes", Nota: "Pizzerías"},
		{Key: "sushi", Familia: "Restaurantes", Nota: "Restaurantes de sushi"},
		{Key: "bar", Familia: "Restaurantes", Nota: "Bares y cantinas"},
		{Key: "antro", Familia: "Restaurantes", Nota: "Centros nocturnos"},
		{Key: "comida rapida", Familia: "Comida rápida", Nota: "Fast food"},
		{Key: "fast food", Familia: "Comida rápida", Nota: "Comida rápida"},
		{Key: "hamburguesas", Familia: "Comida rápida", Nota: "Hamburgueserías"},
		{Key: "food truck", Familia: "Comida rápida", Nota: "Food trucks"},

		// Beauty
		{Key: "spa", Familia: "Salones de belleza", Nota: "Spas"},
		{Key: "salon", Familia: "Salones de belleza", Nota: "Salones de belleza"},
		{Key: "estetica", Familia: "Salones de belleza", Nota: "Estéticas"},
		{Key: "peluqueria", Familia: "Salones de belleza", Nota: "Peluquerías"},
		{Key: "barberia", Familia: "Salones de belleza", Nota: "Barberías"},

		// Health
		{Key: "dentista", Familia: "Médicos y dentistas", Nota: "Consultorios dentales"},
		{Key: "medico", Familia: "Médicos y dentistas", Nota: "Consultorios médicos"},
		{Key: "doctor", Familia: "Médicos y dentistas", Nota: "Consultorios médicos"},
		{Key: "veterinaria", Familia: "Médicos y dentistas", Nota: "Veterinarias"},
		{Key: "hospital", Familia: "Hospitales", Nota: "Hospitales"},
		{Key: "clinica", Familia: "Hospitales", Nota: "Clínicas"},
		{Key: "farmacia", Familia: "Farmacias", Nota: "Farmacias"},

		// Lodging
		{Key: "hotel", Familia: "Hoteles", Nota: "Hoteles"},
		{Key: "hostal", Familia: "Hoteles", Nota: "Hostales"},
		{Key: "airbnb", Familia: "Hoteles", Nota: "Hospedaje"},

		// Retail
		{Key: "tienda", Familia: "Ventas al detalle (Retail)", Nota: "Tiendas"},
		{Key: "retail", Familia: "Ventas al detalle (Retail)", Nota: "Retail"},
		{Key: "boutique", Familia: "Ventas al detalle (Retail)", Nota: "Boutiques"},
		{Key: "joyeria", Familia: "Ventas al detalle (Retail)", Nota: "Joyerías"},
		{Key: "supermercado", Familia: "Supermercados", Nota: "Supermercados"},
		{Key: "minisuper", Familia: "Ventas al detalle (Retail)", Nota: "Tiendas de conveniencia"},
		{Key: "gasolinera", Familia: "Gasolineras", Nota: "Gasolineras"},
		{Key: "estacionamiento", Familia: "Estacionamientos", Nota: "Estacionamientos"},

		// Entertainment
		{Key: "cine", Familia: "Entretenimiento", Nota: "Cines"},
		{Key: "teatro", Familia: "Entretenimiento", Nota: "Teatros"},
		{Key: "boliche", Familia: "Entretenimiento", Nota: "Boliches"},

		// Education
		{Key: "universidad", Familia: "Colegios y universidades", Nota: "Universidades"},
		{Key: "escuela", Familia: "Educación básica", Nota: "Escuelas"},
		{Key: "guarderia", Familia: "Guarderías", Nota: "Guarderías"},

		// Misc retail
		{Key: "ferreteria", Familia: "Refacciones y ferreterías", Nota: "Ferreterías"},
		{Key: "panaderia", Familia: "Ventas al detalle (Retail)", Nota: "Panaderías"},
		{Key: "pasteleria", Familia: "Ventas al detalle (Retail)", Nota: "Pastelerías"},

		// Broad sectors offered by the assistant when it asks for the business type
		{Key: "belleza", Familia: "Salones de belleza", Nota: "Belleza y cuidado personal"},
		{Key: "servicios", Familia: "Otros", Nota: "Servicios profesionales"},
		{Key: "consultorio", Familia: "Médicos y dentistas", Nota: "Consultorios"},
	}
}

func baseRates(credito, debito, internacional, amex string) models.Rates {
	return models.Rates{
		Credito:       decimal.RequireFromString(credito),
		Debito:        decimal.RequireFromString(debito),
		Internacional: decimal.RequireFromString(internacional),
		Amex:          decimal.RequireFromString(amex),
	}
}

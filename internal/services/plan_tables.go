package services

import (
	"avoqado-web/internal/models"

	"github.com/shopspring/decimal"
)

// ProDiscount is taken off the marked-up debit rate for Pro plans
var ProDiscount = decimal.RequireFromString("0.1")

// planDefinition is a plan card before its transaction fee is computed
type planDefinition struct {
	name        string
	price       string
	period      string
	description string
	features    []string
	cta         string
	highlighted bool
	tier        models.PlanTier
}

type businessDefinition struct {
	businessType string
	label        string
	title        string
	subtitle     string
	familia      string
	plans        []planDefinition
}

// initBusinessDefinitions returns the plan catalog in tab order.
// Each business type reads its rates from the catalog category named in familia.
func initBusinessDefinitions() []businessDefinition {
	return []businessDefinition{
		{
			businessType: models.BusinessTypeRestaurants,
			label:        "Restaurantes",
			title:        "Alimentos y Bebidas",
			subtitle:     "Soluciones completas para restaurantes, cafes y bares",
			familia:      "Restaurantes",
			plans: []planDefinition{
				{
					name: "QR Pagos", price: "$0", period: "/mes", description: "Ideal para empezar",
					tier: models.PlanTierStandard, cta: "Comenzar gratis",
					features: []string{
						"Pagos con QR ilimitados",
						"Menu digital basico",
						"Dashboard de reportes",
						"Propinas digitales",
						"Soporte por email",
					},
				},
				{
					name: "Pro", price: "$599", period: "/mes", description: "Para restaurantes en crecimiento",
					tier: models.PlanTierPro, cta: "Prueba 14 dias gratis", highlighted: true,
					features: []string{
						"Todo de QR Pagos +",
						"TPV Movil completo",
						"Gestion de mesas",
						"Inventario basico",
						"Integraciones POS",
						"Soporte prioritario 24/7",
					},
				},
				{
					name: "Enterprise", price: "Custom", description: "Para cadenas y grupos",
					tier: models.PlanTierEnterprise, cta: "Contactar ventas",
					features: []string{
						"Todo de Pro +",
						"Multi-sucursal",
						"API personalizada",
						"Account manager dedicado",
						"SLA garantizado",
						"Integraciones custom",
					},
				},
			},
		},
		{
			businessType: models.BusinessTypeRetail,
			label:        "Tiendas",
			title:        "Tiendas",
			subtitle:     "Punto de venta y gestion para comercios",
			familia:      "Ventas al detalle (Retail)",
			plans: []planDefinition{
				{
					name: "Basico", price: "$0", period: "/mes", description: "Para pequenos comercios",
					tier: models.PlanTierStandard, cta: "Comenzar gratis",
					features: []string{
						"Pagos con tarjeta",
						"Catalogo de productos",
						"Reportes basicos",
						"Recibos digitales",
						"Soporte por email",
					},
				},
				{
					name: "Pro", price: "$499", period: "/mes", description: "Para tiendas en crecimiento",
					tier: models.PlanTierPro, cta: "Prueba 14 dias gratis", highlighted: true,
					features: []string{
						"Todo de Basico +",
						"Control de inventario",
						"Gestion de empleados",
						"Programa de lealtad",
						"Integraciones e-commerce",
						"Soporte 24/7",
					},
				},
				{
					name: "Enterprise", price: "Custom", description: "Multi-tienda",
					tier: models.PlanTierEnterprise, cta: "Contactar ventas",
					features: []string{
						"Todo de Pro +",
						"Multi-sucursal",
						"Reportes consolidados",
						"API avanzada",
						"Account manager",
						"SLA garantizado",
					},
				},
			},
		},
		{
			businessType: models.BusinessTypeServices,
			label:        "Servicios",
			title:        "Servicios",
			subtitle:     "Gestion de citas y pagos para profesionales",
			familia:      models.DefaultFamilia,
			plans: []planDefinition{
				{
					name: "Basico", price: "$0", period: "/mes", description: "Para profesionales independientes",
					tier: models.PlanTierStandard, cta: "Comenzar gratis",
					features: []string{
						"Agenda de citas",
						"Pagos con tarjeta",
						"Recordatorios SMS",
						"Perfil de negocio",
						"Soporte por email",
					},
				},
				{
					name: "Pro", price: "$399", period: "/mes", description: "Para equipos pequenos",
					tier: models.PlanTierPro, cta: "Prueba 14 dias gratis", highlighted: true,
					features: []string{
						"Todo de Basico +",
						"Multiples calendarios",
						"Gestion de clientes",
						"Facturacion automatica",
						"Reportes avanzados",
						"Soporte prioritario",
					},
				},
				{
					name: "Enterprise", price: "Custom", description: "Para empresas",
					tier: models.PlanTierEnterprise, cta: "Contactar ventas",
					features: []string{
						"Todo de Pro +",
						"Multi-ubicacion",
						"Integraciones custom",
						"API completa",
						"Account manager",
						"SLA garantizado",
					},
				},
			},
		},
		{
			businessType: models.BusinessTypeBeauty,
			label:        "Belleza",
			title:        "Belleza",
			subtitle:     "Software para salones, spas y esteticas",
			familia:      "Salones de belleza",
			plans: []planDefinition{
				{
					name: "Basico", price: "$0", period: "/mes", description: "Para estilistas independientes",
					tier: models.PlanTierStandard, cta: "Comenzar gratis",
					features: []string{
						"Reservas online",
						"Pagos con tarjeta",
						"Recordatorios automaticos",
						"Catalogo de servicios",
						"Soporte por email",
					},
				},
				{
					name: "Pro", price: "$449", period: "/mes", description: "Para salones",
					tier: models.PlanTierPro, cta: "Prueba 14 dias gratis", highlighted: true,
					features: []string{
						"Todo de Basico +",
						"Gestion de empleados",
						"Control de comisiones",
						"Inventario de productos",
						"Marketing por email",
						"Soporte 24/7",
					},
				},
				{
					name: "Enterprise", price: "Custom", description: "Multi-sucursal",
					tier: models.PlanTierEnterprise, cta: "Contactar ventas",
					features: []string{
						"Todo de Pro +",
						"Multi-ubicacion",
						"Reportes consolidados",
						"API avanzada",
						"Account manager",
						"SLA garantizado",
					},
				},
			},
		},
	}
}

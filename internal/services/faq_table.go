package services

import "avoqado-web/internal/models"

// assistantContext is the system prompt sent with every AI completion
const assistantContext = `Eres el asistente virtual de Avoqado, una plataforma de gestión para comercios.
Tu rol es responder preguntas sobre Avoqado de forma amigable, concisa y profesional.

INFORMACIÓN CLAVE DE AVOQADO:
- Plataforma integral: TPV móvil, dashboard web, pagos QR, gestión de inventario
- Sectores: restaurantes, bares, cafeterías, retail, servicios, belleza
- Sede: México
- Contacto: hola@avoqado.io, avoqado.io/contact
- Registro: dashboardv2.avoqado.io/signup
- Precios: avoqado.io/pricing (calculadora interactiva)
- Seguridad: Encriptación bancaria, PCI-DSS

COMISIONES POR SECTOR:
%s

REGLAS:
1. Si el usuario pregunta por precios/comisiones y NO especifica sector, pregunta qué tipo de negocio tiene
2. Si especifica sector después de preguntar precios, da solo las comisiones exactas (Débito X%%, Crédito Y%%)
3. Sé conciso (máximo 2-3 oraciones)
4. Usa español informal pero profesional
5. Siempre menciona avoqado.io/pricing para cálculos exactos
6. NO menciones detalles internos como márgenes o porcentajes adicionales`

// Canned replies used when no local answer exists
const (
	fallbackAnswer    = "Lo siento, no tengo una respuesta para eso ahora. Te recomiendo contactar a nuestro equipo en avoqado.io/contact o por WhatsApp para más información."
	errorAnswer       = "Disculpa, tuve un problema procesando tu pregunta. Intenta de nuevo o contáctanos directamente en avoqado.io/contact."
	emptyAnswer       = "No pude generar una respuesta."
	pricingAnswerTmpl = "Para %s, las comisiones son:\n• Débito: %s%%\n• Crédito: %s%%\n• AMEX: %s%%\n\n💡 Para más información: [avoqado.io/pricing](/pricing)"
)

// pricingTriggers mark a conversation as a pricing inquiry
var pricingTriggers = []string{"precio", "cuesta", "costo", "comision", "tasa"}

// businessTypeKeywords disable an FAQ entry while a pricing inquiry is open,
// so a business name gets its rates instead of a generic answer
var businessTypeKeywords = []string{
	"restaurante", "retail", "belleza", "spa", "salon", "tienda",
	"bar", "cafe", "cafeteria", "servicios", "consultorio",
}

// initFAQEntries returns the local knowledge base in match order
func initFAQEntries() []models.FAQEntry {
	return []models.FAQEntry{
		{
			Keywords: []string{"qué es avoqado", "que es avoqado", "qué hace", "que hace", "avoqado es", "explica avoqado"},
			Answer:   "Avoqado es una plataforma integral de gestión para comercios que unifica punto de venta (TPV), pagos, reservas y administración en una sola solución. Ayudamos a restaurantes, bares, retail y servicios a operar de forma más eficiente.",
		},
		{
			Keywords: []string{"cuánto cuesta", "cuanto cuesta", "precio", "precios", "costo", "costos", "plan", "planes", "tarifa", "mensualidad", "cuota"},
			Answer:   "¡Buena pregunta! 💡 Los precios dependen de tu tipo de negocio. ¿Qué tipo de negocio tienes? (restaurante, retail, belleza, servicios, etc.)",
		},
		{
			Keywords: []string{"comision", "comisiones", "fee", "porcentaje", "cargo", "cargos ocultos", "tasa", "tasas"},
			Answer:   "¡Buena pregunta! 💡 Las comisiones dependen de tu tipo de negocio. ¿Qué tipo de negocio tienes? (restaurante, tienda, spa, etc.)",
		},
		{
			Keywords: []string{"prueba", "trial", "gratis", "gratuito", "probar", "demo", "demostración"},
			Answer:   "Sí, ofrecemos una demostración personalizada para que conozcas todas las funcionalidades. Puedes agendar una demo en avoqado.io/contact o registrarte directamente en dashboardv2.avoqado.io/signup.",
		},
		{
			Keywords: []string{"contacto", "contactar", "ventas", "hablar", "comunicar", "whatsapp", "teléfono", "telefono", "email", "correo"},
			Answer:   "Puedes contactarnos: 1) Formulario en avoqado.io/contact, 2) WhatsApp (link abajo), 3) Email a hola@avoqado.io. ¡Estamos para ayudarte!",
		},
		{
			Keywords: []string{"hola", "buenos días", "buenos dias", "buenas tardes", "buenas noches", "hey", "hi", "ola"},
			Answer:   "¡Hola! 👋 Soy el asistente de Avoqado. Puedo responder tus preguntas sobre nuestra plataforma, precios, funcionalidades, y más. ¿En qué puedo ayudarte?",
		},
		{
			Keywords: []string{"gracias", "perfecto", "genial", "excelente", "ok", "entendido"},
			Answer:   "¡De nada! Si tienes más preguntas, aquí estaré. También puedes contactar a nuestro equipo directamente en avoqado.io/contact o por WhatsApp. 🙌",
		},
		{
			Keywords: []string{"sector", "sectores", "industria", "industrias", "tipo de negocio", "para quién", "para quien", "negocios"},
			Answer:   "Avoqado está diseñado para múltiples sectores: Alimentos y Bebidas (restaurantes, cafeterías, bares), Retail (tiendas), Belleza (salones, spas), y Servicios Profesionales. Nuestra plataforma se adapta a cada industria.",
		},
		{
			Keywords: []string{"tpv", "punto de venta", "terminal", "pos", "app", "aplicación", "aplicacion"},
			Answer:   "El TPV Móvil de Avoqado es una app para iOS que te permite cobrar desde cualquier lugar. Incluye: gestión de menú, cobro con tarjeta/QR/efectivo, comandas a cocina, división de cuentas, y modo offline.",
		},
		{
			Keywords: []string{"móvil", "movil", "celular", "iphone", "ipad", "tablet", "dispositivo"},
			Answer:   "Avoqado funciona en dispositivos iOS (iPhone y iPad). La app TPV está optimizada para uso en campo, permitiéndote cobrar y gestionar desde cualquier lugar de tu negocio.",
		},
		{
			Keywords: []string{"android"},
			Answer:   "Actualmente el TPV de Avoqado está disponible solo para iOS (iPhone/iPad). El Dashboard web funciona en cualquier navegador. Contáctanos si tienes preguntas sobre compatibilidad.",
		},
		{
			Keywords: []string{"offline", "sin internet", "sin conexión", "sin conexion", "funciona sin"},
			Answer:   "Sí, el TPV de Avoqado tiene modo offline. Puedes seguir tomando órdenes y cobrando aunque no tengas internet. Los datos se sincronizan automáticamente cuando recuperas conexión.",
		},
		{
			Keywords: []string{"pago", "pagos", "cobrar", "cobro", "aceptar pagos", "formas de pago"},
			Answer:   "Avoqado acepta múltiples formas de pago: tarjetas de crédito/débito, pagos QR, efectivo, y más. Todo se registra automáticamente en tu dashboard con reportes en tiempo real.",
		},
		{
			Keywords: []string{"tarjeta", "tarjetas", "crédito", "credito", "débito", "debito", "visa", "mastercard"},
			Answer:   "Sí, Avoqado acepta todas las tarjetas de crédito y débito principales (Visa, Mastercard, American Express). Los cobros se procesan de forma segura con encriptación bancaria.",
		},
		{
			Keywords: []string{"qr", "código qr", "codigo qr", "escanear", "pago qr"},
			Answer:   "Con Pagos QR de Avoqado, tus clientes pueden pagar escaneando un código desde su celular. Es rápido, sin contacto, y les permite dejar propina y reseña. Ideal para mesas de restaurante.",
		},
		{
			Keywords: []string{"efectivo", "cash", "billetes", "monedas", "cambio"},
			Answer:   "Sí, Avoqado registra pagos en efectivo. El sistema lleva control de tu caja, calcula cambios, y genera reportes de cierre automáticos. Todo queda registrado para tus cortes.",
		},
		{
			Keywords: []string{"propina", "propinas", "tip", "tips"},
			Answer:   "Avoqado incluye propinas digitales integradas. Tus clientes pueden dejar propina al pagar, ya sea desde el TPV o mediante pago QR. Las propinas se reportan por separado para fácil distribución.",
		},
		{
			Keywords: []string{"split", "dividir", "división", "division", "cuenta dividida", "separar cuenta"},
			Answer:   "Sí, puedes dividir cuentas fácilmente. La función Split permite que varios clientes paguen su parte de la cuenta, ya sea en partes iguales o seleccionando productos específicos.",
		},
		{
			Keywords: []string{"enrutamiento", "routing", "clabe", "banco", "bancos", "cuenta bancaria", "depósito", "deposito"},
			Answer:   "El enrutamiento inteligente de Avoqado te permite configurar múltiples CLABEs bancarias. Puedes dirigir pagos a diferentes bancos automáticamente, ideal para negocios con múltiples socios o sucursales.",
		},
		{
			Keywords: []string{"santander", "bbva", "bancomer", "banorte", "inbursa", "hsbc", "citibanamex"},
			Answer:   "Avoqado es compatible con todos los bancos mexicanos. Puedes configurar depósitos a Santander, BBVA, Banorte, Inbursa, HSBC, Citibanamex, y más. El dinero llega directo a tu cuenta.",
		},
		{
			Keywords: []string{"dashboard", "panel", "administración", "administracion", "web", "navegador", "computadora"},
			Answer:   "El Dashboard de Avoqado es tu centro de control web. Desde ahí puedes ver reportes, gestionar inventario, administrar personal, configurar menús, y monitorear todas tus operaciones en tiempo real.",
		},
		{
			Keywords: []string{"reporte", "reportes", "estadísticas", "estadisticas", "análisis", "analisis", "analytics"},
			Answer:   "Avoqado genera reportes en tiempo real: ventas por hora/día/mes, productos más vendidos, ticket promedio, horarios pico, rendimiento de personal, y más. Toma decisiones basadas en datos.",
		},
		{
			Keywords: []string{"inventario", "stock", "productos", "existencias", "almacén", "almacen"},
			Answer:   "La gestión de inventario de Avoqado te permite: controlar stock en tiempo real, recibir alertas de productos bajos, registrar mermas, y sincronizar automáticamente con cada venta desde el TPV.",
		},
		{
			Keywords: []string{"menú", "menu", "carta", "platillos", "categorías", "categorias", "modificadores"},
			Answer:   "Puedes gestionar tu menú completo desde el Dashboard: crear categorías, agregar platillos con fotos, configurar modificadores (tamaños, extras), establecer precios, y sincronizar con el TPV al instante.",
		},
		{
			Keywords: []string{"mesa", "mesas", "tabla", "tablas", "zona", "zonas", "sección", "seccion"},
			Answer:   "El sistema de mesas de Avoqado te permite: visualizar ocupación, asignar meseros por zona, transferir cuentas entre mesas, y ver el estado de cada mesa en tiempo real.",
		},
		{
			Keywords: []string{"orden", "ordenes", "órdenes", "comanda", "comandas", "pedido", "pedidos"},
			Answer:   "Las órdenes se envían desde el TPV directo a cocina. Puedes ver el estatus de cada orden, marcar como entregada, y el sistema registra tiempos de preparación para optimizar tu operación.",
		},
		{
			Keywords: []string{"cocina", "kitchen", "pantalla cocina", "kds", "preparación", "preparacion"},
			Answer:   "Avoqado tiene sistema de pantalla para cocina (KDS). Las comandas llegan ordenadas por prioridad, los cocineros marcan platillos listos, y el mesero recibe notificación cuando están preparados.",
		},
		{
			Keywords: []string{"impresora", "imprimir", "ticket", "tickets", "recibo", "recibos", "comanda impresa"},
			Answer:   "Avoqado es compatible con impresoras térmicas de tickets. Puedes imprimir comandas en cocina, recibos para clientes, y reportes de cierre. Soportamos las marcas más comunes (Epson, Star, etc).",
		},
		{
			Keywords: []string{"personal", "empleado", "empleados", "meseros", "staff", "equipo", "trabajador", "trabajadores"},
			Answer:   "Avoqado incluye gestión de personal: puedes crear usuarios con diferentes roles y permisos, asignar a zonas/mesas, trackear ventas por empleado, y controlar propinas individuales.",
		},
		{
			Keywords: []string{"turno", "turnos", "horario", "horarios", "entrada", "salida", "reloj checador"},
			Answer:   "El módulo de turnos te permite: registrar entrada/salida del personal, programar horarios, ver horas trabajadas, y generar reportes para nómina. Todo integrado con el sistema.",
		},
		{
			Keywords: []string{"saldo", "saldos", "corte", "cortes", "cierre", "arqueo", "caja"},
			Answer:   "El sistema de saldos y cortes de Avoqado automatiza el cierre de caja. Calcula efectivo esperado, registra diferencias, genera reportes de turno, y consolida todo en el Dashboard.",
		},
		{
			Keywords: []string{"seguro", "seguridad", "datos", "privacidad", "encriptación", "encriptacion", "pci", "protección", "proteccion"},
			Answer:   "Avoqado usa encriptación de grado bancario y cumple con PCI-DSS para proteger datos de pago. Tu información y la de tus clientes está segura. Nunca almacenamos datos de tarjetas.",
		},
		{
			Keywords: []string{"soporte", "ayuda", "asistencia", "problema", "error", "falla", "no funciona", "bug"},
			Answer:   "Nuestro equipo de soporte está disponible para ayudarte. Puedes contactarnos por: 1) Chat en vivo, 2) Email a hola@avoqado.io, 3) WhatsApp. Respondemos rápido.",
		},
		{
			Keywords: []string{"unificado", "unificada", "todo en uno", "integrado", "centralizado", "un solo", "una sola"},
			Answer:   "Avoqado es la plataforma unificada: TPV, Dashboard, pagos, inventario, personal, todo conectado. Un solo sistema, cero conciliaciones. Sin hojas de Excel, sin esfuerzo manual.",
		},
		{
			Keywords: []string{"méxico", "mexico", "mexicano", "país", "pais", "disponible en"},
			Answer:   "Avoqado opera en México. Estamos optimizados para el mercado mexicano: pesos, bancos locales, CFDIs, y soporte en español. Actualmente solo estamos disponibles en México.",
		},
		{
			Keywords: []string{"sucursal", "sucursales", "multi", "varias", "varias ubicaciones", "cadena"},
			Answer:   "Sí, Avoqado soporta múltiples sucursales. Puedes gestionar varias ubicaciones desde un solo Dashboard, con reportes consolidados o por sucursal. Ideal para cadenas y franquicias.",
		},
		{
			Keywords: []string{"adios", "adiós", "bye", "chao", "hasta luego", "nos vemos"},
			Answer:   "¡Hasta pronto! 👋 Si necesitas más ayuda, estaré aquí. También puedes visitar avoqado.io o contactar a nuestro equipo directamente. ¡Éxito con tu negocio!",
		},
	}
}

// promptSector is one line of the rate summary embedded in the system prompt
type promptSector struct {
	label   string
	familia string
}

func initPromptSectors() []promptSector {
	return []promptSector{
		{label: "Restaurantes/Bares", familia: "Restaurantes"},
		{label: "Retail/Tiendas", familia: "Ventas al detalle (Retail)"},
		{label: "Belleza/Salones/Spa", familia: "Salones de belleza"},
		{label: "Servicios/Consultorios", familia: "Médicos y dentistas"},
		{label: "Joyerías (se clasifican como retail)", familia: "Ventas al detalle (Retail)"},
	}
}

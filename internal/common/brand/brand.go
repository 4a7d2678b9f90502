// internal/common/brand/brand.go
package brand

// Context is the brand positioning block injected into generation prompts.
const Context = `
## FASTSTRAT - BRAND DNA

### Qué es FastStrat
FastStrat es una plataforma de IA que automatiza la estrategia y ejecución de marketing para PyMEs y Agencias.
Ofrecemos un "Departamento de Marketing IA" completo.

### Productos Principales
**1. BrandOS (Estrategia)**: sistema operativo de marca impulsado por IA. Genera estrategia completa en minutos:
posicionamiento, buyer personas, mensajes clave, plan de contenidos.
**2. Growth Engine (Ejecución)**: motor de crecimiento automatizado que ejecuta la estrategia de BrandOS:
contenido, ads, email marketing, analytics.

### El Problema que Resolvemos
**"Spaghetti Marketing"**: marketing táctico sin estrategia.
- 73% de PyMEs no tienen estrategia documentada
- Publican sin rumbo, gastan sin ROI
- "Marketing de McGuyver": improvisación constante

**"La Paradoja del Marketing"**:
- Si no tienes dinero no puedes contratar un equipo de marketing
- Si no tienes marketing no puedes generar dinero
- FastStrat rompe este ciclo

### Diferenciadores
1. Estrategia ANTES de tácticas
2. IA + Metodología probada
3. Departamento completo, no un chatbot
4. Para PyMEs/Agencias, no enterprise ni freelancers

### Tono de Voz
Directo y sin rodeos. Empático pero retador. Data-driven. Cercano, latinoamericano, nada corporativo.

### ICP
**Primario**: Founders de PyMEs ($500K-$5M revenue) sin CMO ni equipo de marketing.
**Secundario**: Agencias de marketing pequeñas (5-20 personas) que necesitan escalar sin contratar.

### CTA Principal
"Deja de improvisar. Obtén tu departamento de marketing IA."
`

// LeadMagnetGuidelines describes how lead magnets and their posts are structured.
const LeadMagnetGuidelines = `
## GUÍA PARA LEAD MAGNETS

### Principios
1. Valor real, no teaser: el lead magnet debe resolver algo por sí solo
2. Conectar con el producto: mostrar cómo FastStrat amplifica el resultado
3. Actionable: el usuario debe poder implementar algo inmediatamente
4. Branded: siempre con el look & feel de FastStrat

### Estructura de Carousel (LinkedIn)
- Slide 1: Hook visual + título provocador
- Slide 2: El problema (con datos)
- Slides 3-7: El contenido de valor
- Slides 8-9: El framework/método
- Slide 10: CTA + cómo obtener más

### Estructura de Guía/PDF
1. Portada con título y subtítulo
2. El problema
3. Por qué las soluciones actuales fallan
4. El framework/método
5. Ejemplos prácticos
6. Siguiente paso + CTA FastStrat

### Copy para LinkedIn Post (PASTOR)
- Problem: identifica el dolor
- Agitate: amplifica las consecuencias
- Story: cuenta un caso real
- Testimony: prueba social o dato
- Offer: el lead magnet
- Response: CTA claro (Comenta X)
`

// VisualStyle is appended to every image prompt.
const VisualStyle = "Modern tech B2B aesthetic, clean minimalist design, gradient backgrounds with purple/indigo (#6366F1) and teal (#10B981) tones, professional but not corporate, bold typography, abstract geometric shapes, no text in image unless specified, high contrast, premium quality"

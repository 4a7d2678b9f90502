// internal/workers/content/product-architect/prompts.go
package productarchitect

import (
	"fmt"
	"strings"

	"magnet-factory/internal/common/brand"
	"magnet-factory/internal/models"
)

const untitled = "Genera uno basado en el research"

type prompt struct {
	deliverable   string
	preface       []string
	researchLabel string
	research      models.Record
	header        []string
	guidelines    bool
	instructions  string
	extra         string
	shape         string
}

func (p prompt) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Eres el Product Architect de FastStrat. Crea %s.\n\n", p.deliverable)
	for _, line := range p.preface {
		b.WriteString(line + "\n\n")
	}
	label := p.researchLabel
	if label == "" {
		label = "RESEARCH DATA"
	}
	fmt.Fprintf(&b, "%s:\n%s\n\n", label, models.PromptJSON(p.research, 0))
	for _, line := range p.header {
		b.WriteString(line + "\n")
	}
	if len(p.header) > 0 {
		b.WriteString("\n")
	}
	if p.guidelines {
		b.WriteString(brand.LeadMagnetGuidelines + "\n")
	}
	b.WriteString(brand.Context + "\n")
	b.WriteString("INSTRUCCIONES:\n" + p.instructions + "\n\n")
	if p.extra != "" {
		b.WriteString(p.extra + "\n\n")
	}
	b.WriteString("Responde en JSON:\n" + p.shape)
	return b.String()
}

func suggestedTitle(title string) string {
	if title == "" {
		title = untitled
	}
	return "TÍTULO SUGERIDO: " + title
}

func carouselPrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un CAROUSEL COMPLETO para LinkedIn",
		research:    research,
		header:      []string{suggestedTitle(opts.Title)},
		guidelines:  true,
		instructions: `1. Crea exactamente 10 slides
2. Cada slide debe tener: título corto (max 8 palabras) + cuerpo (max 40 palabras)
3. Slide 1: Hook visual impactante con dato o pregunta
4. Slide 2: El problema con datos reales
5. Slides 3-7: Contenido de valor (tips, framework, método)
6. Slide 8-9: El framework completo o resumen
7. Slide 10: CTA con "Comenta [PALABRA] para enviártelo"`,
		shape: `{
    "carousel_title": "título del carousel",
    "hook": "gancho principal en 1 oración",
    "target_audience": "para quién es",
    "slides": [
        {"slide_number": 1, "title": "título del slide", "body": "contenido del slide", "visual_note": "descripción de elemento visual sugerido"}
    ],
    "comment_trigger": "palabra para comentar (ej: PLAN, GUÍA, etc)",
    "estimated_engagement": "alto/medio/bajo"
}`,
	}.String()
}

func guidePrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "una GUÍA/EBOOK COMPLETA",
		research:    research,
		header:      []string{suggestedTitle(opts.Title), fmt.Sprintf("PÁGINAS OBJETIVO: %d", opts.Pages)},
		guidelines:  true,
		instructions: `1. Escribe TODO el contenido, no resúmenes
2. Cada sección debe ser implementable inmediatamente
3. Incluye ejemplos concretos
4. Siempre cita las fuentes del research
5. Termina conectando con FastStrat`,
		extra: `ESTRUCTURA OBLIGATORIA:
- Portada
- Introducción (el problema)
- Por qué las soluciones actuales fallan
- El método/framework (2-3 secciones)
- Ejemplos prácticos
- Checklist de implementación
- Siguiente paso (CTA FastStrat)`,
		shape: `{
    "guide_title": "título de la guía",
    "subtitle": "subtítulo",
    "target_audience": "para quién es",
    "sections": [
        {"section_number": 1, "title": "título de sección", "content": "CONTENIDO COMPLETO de la sección (mínimo 150 palabras)", "key_takeaway": "punto clave en 1 oración"}
    ],
    "bonus_checklist": ["item 1 accionable", "item 2 accionable"],
    "cta_text": "texto del call to action final"
}`,
	}.String()
}

func checklistPrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un CHECKLIST COMPLETO",
		research:    research,
		header:      []string{suggestedTitle(opts.Title)},
		instructions: `1. Crea 15-20 items accionables
2. Agrupa en categorías lógicas (3-4 categorías)
3. Cada item debe ser específico y verificable
4. Incluye métricas donde sea posible
5. El último item debe conectar con FastStrat`,
		shape: `{
    "checklist_title": "título del checklist",
    "subtitle": "subtítulo descriptivo",
    "categories": [
        {
            "category_name": "nombre de categoría",
            "items": [
                {"item": "descripción del item", "why_important": "por qué importa (1 oración)", "metric": "cómo medir éxito (opcional)"}
            ]
        }
    ],
    "total_items": 15,
    "estimated_completion_time": "tiempo estimado",
    "cta": "call to action final"
}`,
	}.String()
}

func dataReportPrompt(stats models.Record, opts Options) string {
	title := opts.Title
	if title == "" {
		title = stats.String("report_title")
	}
	if title == "" {
		title = "Estado del Marketing 2026"
	}
	return prompt{
		deliverable:   "un REPORTE DE DATOS completo",
		researchLabel: "ESTADÍSTICAS RECOPILADAS",
		research:      stats,
		header:        []string{"TÍTULO SUGERIDO: " + title},
		instructions: `1. Organiza los datos en secciones temáticas
2. Cada estadística DEBE tener su fuente citada
3. Agrega análisis e interpretación de FastStrat
4. Incluye gráficos sugeridos (describe qué mostrar)
5. Termina con recomendaciones accionables`,
		extra: `ESTRUCTURA:
- Executive Summary
- Metodología (fuentes)
- Hallazgos principales (3-4 secciones)
- Análisis FastStrat
- Recomendaciones
- Siguiente paso`,
		shape: `{
    "report_title": "título del reporte",
    "subtitle": "subtítulo",
    "executive_summary": "resumen ejecutivo (100 palabras)",
    "methodology": "descripción de fuentes usadas",
    "sections": [
        {"section_title": "título", "key_stat": "estadística principal", "source": "fuente", "analysis": "análisis de FastStrat (150+ palabras)", "chart_suggestion": "tipo de gráfico sugerido y qué mostrar", "implication": "qué significa para PyMEs/Agencias"}
    ],
    "recommendations": [
        {"recommendation": "recomendación", "priority": "alta/media/baja", "how_faststrat_helps": "cómo FastStrat facilita esto"}
    ],
    "conclusion": "conclusión y CTA"
}`,
	}.String()
}

func templatePrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un TEMPLATE utilizable",
		preface:     []string{"TIPO DE TEMPLATE: " + opts.TemplateType},
		research:    research,
		instructions: `1. El template debe ser USABLE inmediatamente
2. Incluye instrucciones de llenado
3. Proporciona ejemplos en cada sección
4. Hazlo visual y organizado`,
		shape: `{
    "template_title": "título del template",
    "description": "descripción de uso",
    "sections": [
        {
            "section_name": "nombre",
            "instructions": "cómo llenar esta sección",
            "fields": [
                {"field_name": "nombre del campo", "placeholder": "ejemplo de qué poner", "help_text": "ayuda adicional"}
            ],
            "example": "ejemplo completo de esta sección llena"
        }
    ],
    "pro_tips": ["tip 1", "tip 2"],
    "faststrat_upgrade": "cómo FastStrat automatiza este proceso"
}`,
	}.String()
}

func minicoursePrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un MINI-CURSO de 5 emails",
		research:    research,
		header:      []string{suggestedTitle(opts.Title)},
		instructions: `1. Crea exactamente 5 emails educativos
2. Cada email debe poder leerse en 3-5 minutos
3. Progresión lógica de básico a avanzado
4. Cada email termina con un "quick win" implementable
5. Email 5 conecta con FastStrat como siguiente paso`,
		extra: `ESTRUCTURA POR EMAIL:
- Subject line irresistible
- Preview text
- Saludo personalizado
- Contenido educativo (300-400 palabras)
- Ejemplo práctico
- Acción del día
- Teaser del siguiente email`,
		shape: `{
    "course_title": "título del mini-curso",
    "subtitle": "subtítulo",
    "target_audience": "para quién es",
    "transformation_promise": "qué logrará al terminar",
    "emails": [
        {"day": 1, "subject": "línea de asunto", "preview_text": "texto de preview", "theme": "tema del día", "content": "CONTENIDO COMPLETO del email (300+ palabras)", "key_lesson": "lección principal", "action_item": "acción específica para hoy", "next_teaser": "adelanto del siguiente email"}
    ],
    "bonus_resource": "recurso adicional sugerido",
    "final_cta": "call to action final hacia FastStrat"
}`,
	}.String()
}

func worksheetPrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un WORKSHEET interactivo",
		research:    research,
		header:      []string{suggestedTitle(opts.Title)},
		instructions: `1. Crea 5-7 ejercicios prácticos
2. Cada ejercicio debe generar reflexión y acción
3. Incluye espacios para escribir respuestas
4. Progresión de autodiagnóstico a plan de acción
5. Termina con un ejercicio que conecte con FastStrat`,
		extra: `TIPOS DE EJERCICIOS:
- Autodiagnóstico (escala 1-10)
- Preguntas de reflexión
- Matrices de priorización
- Listas para completar
- Mini-auditorías
- Planificación de acciones`,
		shape: `{
    "worksheet_title": "título del worksheet",
    "subtitle": "subtítulo",
    "introduction": "introducción y cómo usar (100 palabras)",
    "estimated_time": "tiempo estimado para completar",
    "exercises": [
        {
            "exercise_number": 1,
            "title": "título del ejercicio",
            "type": "tipo (diagnostic/reflection/matrix/planning)",
            "instructions": "instrucciones claras",
            "questions": [
                {"question": "pregunta o prompt", "space_for_answer": "descripción del espacio (líneas, tabla, etc)", "example_answer": "ejemplo de respuesta ideal"}
            ],
            "key_insight": "qué aprenderá de este ejercicio"
        }
    ],
    "scoring_guide": "guía de interpretación de resultados (si aplica)",
    "next_steps": "qué hacer con los resultados",
    "faststrat_connection": "cómo FastStrat ayuda a implementar"
}`,
	}.String()
}

func swipefilePrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un SWIPE FILE completo",
		preface:     []string{"TIPO DE SWIPE: " + opts.SwipeType},
		research:    research,
		instructions: `1. Crea 15-20 ejemplos listos para copiar/adaptar
2. Agrupa por categoría o uso
3. Cada ejemplo debe ser directamente usable
4. Incluye notas de cuándo usar cada uno
5. Variedad de tonos y estilos`,
		extra: `TIPOS DE CONTENIDO SEGÚN SWIPE_TYPE:
- copy: Headlines, CTAs, emails, posts
- design: Layouts, estructuras, formatos
- strategy: Frameworks, procesos, plantillas
- outreach: Mensajes de venta, follow-ups`,
		shape: fmt.Sprintf(`{
    "swipefile_title": "título del swipe file",
    "swipe_type": %q,
    "description": "descripción y cómo usar",
    "categories": [
        {
            "category_name": "nombre de categoría",
            "description": "cuándo usar estos ejemplos",
            "swipes": [
                {"swipe_name": "nombre/identificador", "content": "CONTENIDO COMPLETO listo para copiar", "when_to_use": "situación ideal para usar", "customization_tips": "cómo personalizar"}
            ]
        }
    ],
    "total_swipes": 15,
    "pro_tips": ["tip 1 de uso", "tip 2"],
    "faststrat_bonus": "cómo FastStrat genera estos automáticamente"
}`, opts.SwipeType),
	}.String()
}

func casestudyPrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un CASO DE ESTUDIO detallado",
		research:    research,
		header:      []string{suggestedTitle(opts.Title)},
		instructions: `1. Estructura narrativa compelling (problema → solución → resultados)
2. Datos y métricas específicas
3. Lecciones extraíbles y aplicables
4. Conecta con la metodología FastStrat
5. Si no hay caso real, crea uno representativo basado en patrones reales`,
		extra: `ESTRUCTURA:
- Contexto del caso
- El desafío/problema
- La solución implementada
- Resultados con métricas
- Lecciones aprendidas
- Cómo aplicar esto`,
		shape: `{
    "case_study_title": "título del caso",
    "subtitle": "subtítulo atractivo",
    "company_profile": {"type": "tipo de empresa (PyME, Startup, Agencia)", "industry": "industria", "size": "tamaño aproximado", "initial_situation": "situación antes"},
    "challenge": {"main_problem": "problema principal", "symptoms": ["síntoma 1", "síntoma 2"], "failed_attempts": "qué habían intentado antes", "stakes": "qué estaba en juego"},
    "solution": {
        "approach": "enfoque general",
        "steps": [
            {"step_number": 1, "action": "acción tomada", "rationale": "por qué funcionó", "tools_used": "herramientas o métodos"}
        ],
        "timeline": "tiempo de implementación"
    },
    "results": {
        "metrics": [
            {"metric": "nombre de métrica", "before": "valor antes", "after": "valor después", "improvement": "% o cantidad de mejora"}
        ],
        "qualitative_wins": ["logro cualitativo 1"],
        "roi": "retorno de inversión estimado"
    },
    "lessons_learned": [
        {"lesson": "lección", "application": "cómo aplicar en tu negocio"}
    ],
    "key_takeaway": "conclusión principal en 1-2 oraciones",
    "faststrat_connection": "cómo FastStrat facilita replicar esto"
}`,
	}.String()
}

func toolkitPrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un TOOLKIT completo",
		research:    research,
		header:      []string{suggestedTitle(opts.Title)},
		instructions: `1. Crea un kit con 5-7 herramientas/recursos diferentes
2. Cada herramienta debe ser usable independientemente
3. En conjunto deben resolver un problema completo
4. Incluye instrucciones de uso para cada una
5. Hazlo sentir como un "kit profesional"`,
		extra: `TIPOS DE HERRAMIENTAS A INCLUIR:
- Checklist de diagnóstico
- Template/plantilla
- Calculadora o matriz
- Guía rápida (1 página)
- Scripts o ejemplos
- Framework visual`,
		shape: `{
    "toolkit_title": "título del toolkit",
    "subtitle": "subtítulo",
    "description": "descripción general del kit",
    "problem_solved": "qué problema resuelve este kit",
    "tools": [
        {"tool_number": 1, "tool_name": "nombre de la herramienta", "tool_type": "tipo (checklist/template/calculator/guide/scripts/framework)", "description": "para qué sirve", "when_to_use": "cuándo usar", "content": "CONTENIDO COMPLETO de la herramienta", "instructions": "cómo usar paso a paso"}
    ],
    "implementation_order": "orden sugerido de uso",
    "quick_start": "cómo empezar en 5 minutos",
    "advanced_tips": ["tip avanzado 1", "tip 2"],
    "faststrat_upgrade": "cómo FastStrat potencia este toolkit"
}`,
	}.String()
}

func cheatsheetPrompt(research models.Record, opts Options) string {
	return prompt{
		deliverable: "un CHEAT SHEET de referencia rápida",
		research:    research,
		header:      []string{suggestedTitle(opts.Title)},
		instructions: `1. Máximo 1-2 páginas (contenido denso pero escaneable)
2. Diseñado para imprimir y tener a la mano
3. Organizado en secciones visuales claras
4. Solo lo esencial, sin relleno
5. Formato de referencia rápida (bullets, tablas, fórmulas)`,
		extra: `ELEMENTOS A INCLUIR:
- Fórmulas o frameworks clave
- Listas de verificación rápidas
- Métricas importantes
- Errores comunes a evitar
- Atajos o trucos pro
- Referencias rápidas`,
		shape: `{
    "cheatsheet_title": "título del cheat sheet",
    "subtitle": "subtítulo corto",
    "sections": [
        {
            "section_name": "nombre de sección",
            "format": "tipo (bullets/table/formula/checklist)",
            "content": [
                {"item": "elemento", "detail": "detalle breve (máx 15 palabras)"}
            ]
        }
    ],
    "key_formulas": [
        {"name": "nombre de fórmula/framework", "formula": "la fórmula o pasos", "example": "ejemplo rápido"}
    ],
    "common_mistakes": ["error 1 a evitar", "error 2"],
    "pro_tips": ["tip pro 1", "tip pro 2"],
    "quick_reference_table": {"headers": ["columna1", "columna2"], "rows": [["dato1", "dato2"]]},
    "footer_cta": "CTA breve para FastStrat"
}`,
	}.String()
}

// internal/workers/research/market-intel/prompts.go
package marketintel

import (
	"fmt"

	"magnet-factory/internal/models"
)

func researchTrendPrompt(topic string, results []models.SearchResult) string {
	return fmt.Sprintf(`Eres el Agente de Inteligencia de Mercado de FastStrat.

TEMA A INVESTIGAR: %s

RESULTADOS DE BÚSQUEDA:
%s

CONTEXTO FASTSTRAT:
- Vendemos automatización de marketing estratégico (BrandOS + Growth Engine)
- Nuestro mensaje: "Marketing sin estrategia es solo ruido (Spaghetti Marketing)"
- ICP: PyMEs y Agencias que no tienen departamento de marketing

ANALIZA y responde en JSON:
{
    "trend_summary": "Resumen de la tendencia en 2-3 oraciones",
    "data_points": [
        {"stat": "dato concreto con número", "source": "fuente", "url": "link"},
        {"stat": "dato concreto con número", "source": "fuente", "url": "link"},
        {"stat": "dato concreto con número", "source": "fuente", "url": "link"}
    ],
    "strategic_gap": "Por qué FastStrat es la única solución sostenible para este problema/tendencia",
    "lead_magnet_angle": "Ángulo recomendado para el Lead Magnet",
    "viral_potential": "alto/medio/bajo",
    "reasoning": "Por qué este tema tiene potencial viral"
}`, topic, models.PromptJSON(results, 0))
}

func trendingTopicsPrompt(results []models.SearchResult) string {
	return fmt.Sprintf(`Basado en estos resultados de búsqueda actuales, identifica 5 temas trending para crear Lead Magnets de marketing:

RESULTADOS:
%s

Para cada tema, evalúa:
1. Relevancia para PyMEs/Agencias
2. Conexión con "marketing estratégico" (el core de FastStrat)
3. Potencial viral en LinkedIn

Responde en JSON:
[
    {
        "topic": "nombre del tema",
        "why_trending": "por qué está trending ahora",
        "faststrat_angle": "cómo conectarlo con FastStrat",
        "urgency": "alta/media/baja",
        "suggested_format": "carousel/guía/checklist/reporte"
    }
]`, models.PromptJSON(results, 0))
}

func painPointPrompt(painPoint string, results []models.SearchResult) string {
	return fmt.Sprintf(`Eres un analista de mercado experto. Analiza este dolor de cliente:

DOLOR: %s

RESULTADOS DE BÚSQUEDA:
%s

CONTEXTO: FastStrat vende automatización de marketing estratégico para PyMEs/Agencias.

Responde en JSON:
{
    "pain_point_analysis": {
        "description": "descripción detallada del dolor",
        "who_suffers": "quién sufre este dolor específicamente",
        "current_solutions": ["solución actual 1", "solución actual 2"],
        "why_solutions_fail": "por qué las soluciones actuales no funcionan"
    },
    "data_points": [
        {"stat": "estadística relevante", "source": "fuente", "url": "link"}
    ],
    "faststrat_solution": "cómo FastStrat resuelve esto de forma única",
    "lead_magnet_recommendation": {
        "title": "título sugerido",
        "format": "carousel/guía/checklist",
        "hook": "gancho principal",
        "key_sections": ["sección 1", "sección 2", "sección 3"]
    }
}`, painPoint, models.PromptJSON(results, 0))
}

func industryStatsPrompt(industry string, results []models.SearchResult) string {
	return fmt.Sprintf(`Recopila estadísticas reales de la industria de %s para crear un reporte de autoridad.

RESULTADOS DE BÚSQUEDA:
%s

Extrae y organiza las estadísticas más impactantes. Cada stat DEBE tener fuente.

Responde en JSON:
{
    "report_title": "título sugerido para el reporte",
    "key_stats": [
        {"stat": "X%% de empresas...", "source": "HubSpot 2025", "url": "...", "category": "categoría"}
    ],
    "trends": [
        {"trend": "descripción de tendencia", "implication": "qué significa para PyMEs"}
    ],
    "faststrat_insight": "insight único que conecta los datos con la necesidad de FastStrat",
    "suggested_sections": ["sección 1", "sección 2"]
}`, industry, models.PromptJSON(results, 0))
}

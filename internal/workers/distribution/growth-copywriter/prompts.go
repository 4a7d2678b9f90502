// internal/workers/distribution/growth-copywriter/prompts.go
package growthcopywriter

import (
	"fmt"

	"magnet-factory/internal/common/brand"
	"magnet-factory/internal/models"
)

func linkedInPostPrompt(content, research models.Record, trigger string) string {
	return fmt.Sprintf(`Eres el Growth Copywriter de FastStrat. Escribe un POST VIRAL para LinkedIn.

LEAD MAGNET A PROMOCIONAR:
%[1]s

RESEARCH/DATA POINTS:
%[2]s

COMMENT TRIGGER: %[3]s

%[4]s

FRAMEWORK PASTOR:
- Problem: Identifica el dolor con dato impactante
- Agitate: Amplifica las consecuencias de no actuar
- Story: Mini-historia o ejemplo real
- Testimony: Prueba social o dato de autoridad
- Offer: El lead magnet como solución
- Response: CTA claro ("Comenta %[3]s")

REGLAS OBLIGATORIAS:
1. Hook en primera línea (dato impactante o pregunta provocadora)
2. Líneas cortas (máx 10 palabras por línea)
3. Espacios entre párrafos
4. Incluir AL MENOS 1 dato real con fuente
5. Máximo 1 emoji o ninguno
6. Terminar con "Comenta '%[3]s' y te lo envío"
7. 3 hashtags incluyendo #FastStrat
8. Entre 150-200 palabras

TONO: Latinoamericano, directo, de founder a founder. Nada corporativo.

Responde en JSON:
{
    "post_text": "EL POST COMPLETO LISTO PARA COPIAR",
    "hook": "la primera línea del post",
    "comment_trigger": "%[3]s",
    "hashtags": ["#hashtag1", "#hashtag2", "#FastStrat"],
    "estimated_engagement": "alto/medio/bajo",
    "best_posting_time": "día y hora recomendados",
    "follow_up_comment": "comentario para poner después de publicar para boost del algoritmo"
}`, models.PromptJSON(content, contentLimit), models.PromptJSON(research, researchLimit), trigger, brand.Context)
}

func carouselIntroPrompt(carousel models.Record) string {
	return fmt.Sprintf(`Escribe un post de LinkedIn para acompañar este CAROUSEL.

CAROUSEL DATA:
Título: %s
Hook: %s
Slides: %d
Target: %s

OBJETIVO: Que la gente deslice el carousel completo y comente.

ESTRUCTURA:
1. Hook que genere curiosidad sobre el contenido del carousel
2. Promesa de lo que van a aprender
3. Teaser de 2-3 puntos clave
4. CTA: "Guarda este post + comenta para más contenido así"

REGLAS:
- Corto (80-120 palabras máximo)
- Líneas cortas
- Generar FOMO de no ver el carousel
- NO revelar todo el contenido

Responde en JSON:
{
    "post_text": "post completo",
    "hook": "primera línea",
    "cta": "call to action",
    "hashtags": ["#tag1", "#tag2", "#FastStrat"]
}`, carousel.String("carousel_title"), carousel.String("hook"), len(carousel.List("slides")), carousel.String("target_audience"))
}

func dmResponsePrompt(title, link string) string {
	return fmt.Sprintf(`Escribe el MENSAJE DIRECTO para enviar a quienes comenten pidiendo el lead magnet.

LEAD MAGNET: %s
LINK: %s

OBJETIVOS:
1. Entregar el recurso prometido
2. Generar conversación
3. Calificar si es potencial cliente de FastStrat

ESTRUCTURA:
1. Saludo personalizado
2. Entrega del recurso
3. Pregunta de calificación (qué problema tienen)
4. Invitación sutil a conocer FastStrat

Responde en JSON:
{
    "dm_text": "mensaje completo",
    "follow_up_question": "pregunta para continuar conversación",
    "qualifying_question": "pregunta para identificar si es ICP"
}`, title, link)
}

func emailSequencePrompt(content models.Record) string {
	return fmt.Sprintf(`Escribe una SECUENCIA DE 3 EMAILS para nurturing después de descargar el lead magnet.

LEAD MAGNET:
%s

%s

SECUENCIA:
1. Email 1 (día 0, inmediato): Entrega + quick win
2. Email 2 (día 2): Profundizar + caso de éxito
3. Email 3 (día 4): CTA a demo/trial de FastStrat

REGLAS:
- Exactamente 3 emails, con "day" 0, 2 y 4
- Subject lines con alta apertura
- Emails cortos (150 palabras máx)
- Valor en cada email, no solo venta
- Tono personal, de founder

Responde en JSON:
{
    "sequence_name": "nombre de la secuencia",
    "emails": [
        {"day": 0, "subject": "asunto del email", "preview_text": "texto de preview", "body": "cuerpo completo del email", "cta_button": "texto del botón", "cta_link": "descripción del link"}
    ]
}`, models.PromptJSON(content, emailLimit), brand.Context)
}

func landingPagePrompt(content models.Record) string {
	return fmt.Sprintf(`Escribe el COPY para una landing page del lead magnet.

LEAD MAGNET:
%s

%s

SECCIONES NECESARIAS:
1. Headline principal
2. Subheadline
3. Bullet points de beneficios (5)
4. Social proof placeholder
5. CTA button text
6. Descripción de qué incluye

Responde en JSON:
{
    "headline": "título principal",
    "subheadline": "subtítulo",
    "benefits": [
        {"benefit": "beneficio", "description": "descripción corta"}
    ],
    "what_you_get": ["item 1", "item 2"],
    "cta_button": "texto del botón",
    "cta_subtext": "texto debajo del botón",
    "social_proof_suggestion": "qué tipo de social proof incluir"
}`, models.PromptJSON(content, contentLimit), brand.Context)
}

// assistant реализует детерминированный fallback-ответчик сайта сообщества.
//
// Матчер — чистая функция над фиксированной таблицей правил: вход
// нормализуется (trim + lower), затем правила проверяются строго по
// порядку приоритета, побеждает первое совпавшее. Наборы ключевых слов
// пересекаются (например, «event» встречается и в фестивальной, и в
// событийной группе), поэтому порядок правил — часть контракта.
package assistant

import "strings"

// SetupResponse — ответ по умолчанию: показывается на слишком коротком
// вводе, на явном запросе помощи и когда ни одно правило не совпало,
// а внешний провайдер не сконфигурирован.
const SetupResponse = "I need an API key to answer questions.\n\n" +
	"**Free option:** Get a Groq API key at https://console.groq.com. Add to your environment:\n" +
	"`GROQ_API_KEY=your_key_here`\n\n" +
	"Then restart the service."

// SystemPrompt — системная инструкция для внешних провайдеров.
const SystemPrompt = `You are a helpful, friendly AI assistant. Your role is to:
- Answer the user's questions: general knowledge, advice, explanations, and more. Be clear, natural, and conversational.
- When the user asks about Ikoha Community (Ikoha, Ovia South-West, Edo State, Nigeria), use this context: location (Ovia South-West LGA, Iguobazuwa ward), annual festival January 1st, contact asenlucky9@gmail.com or the site's Contact form, resources (cocoa, palm oil, granite), and site pages: News (/news), Events, Minerals (/minerals), Projects (/projects), Businesses (/businesses), Contact (/contact).
- Keep answers concise but helpful. Use plain language. If unsure, say so. For official complaints or requests about Ikoha, suggest using the Contact form or email asenlucky9@gmail.com.`

// rule — пара (предикат над нормализованным текстом, фиксированный ответ).
type rule struct {
	match    func(q string) bool
	response string
}

// Matcher — упорядоченная таблица правил. Создаётся один раз при старте
// и далее не мутируется.
type Matcher struct {
	rules []rule
}

// Reply классифицирует сообщение пользователя.
//
// Возвращает:
//   - (ответ, true) — правило совпало либо ввод короче 2 символов
//     (короткий ввод сразу получает SetupResponse);
//   - ("", false) — ни одно правило не совпало; вызывающая сторона
//     подставляет собственный ответ по умолчанию.
//
// Пути «короткий ввод» и «нет совпадения» дают пользователю один и тот же
// текст, но различимы по второму возвращаемому значению.
func (m *Matcher) Reply(message string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(message))

	if len(q) < 2 {
		return SetupResponse, true
	}

	for _, r := range m.rules {
		if r.match(q) {
			return r.response, true
		}
	}

	return "", false
}

// containsAny — истина, если q содержит хотя бы одну из подстрок.
func containsAny(q string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(q, sub) {
			return true
		}
	}

	return false
}

// keywords строит предикат-OR по набору подстрок.
func keywords(subs ...string) func(string) bool {
	return func(q string) bool {
		return containsAny(q, subs...)
	}
}

// NewMatcher собирает таблицу правил в порядке приоритета.
// Порядок фиксирован и служит tie-break'ом для пересекающихся наборов слов.
func NewMatcher() *Matcher {
	return &Matcher{rules: []rule{
		// 1. Фестиваль / празднование.
		{
			match: func(q string) bool {
				if containsAny(q, "festival", "celebrat") {
					return true
				}
				return strings.Contains(q, "when") && containsAny(q, "january", "event")
			},
			response: "The Ikoha Annual Festival is held on January 1st each year. For more events, visit the News & Events page on this site.",
		},
		// 2. Контакты / обратная связь.
		{
			match:    keywords("contact", "email", "reach", "report", "issue", "feedback", "suggest", "complaint", "who do i"),
			response: "You can reach the community by email at asenlucky9@gmail.com or use the Contact form on this website. The team will respond as soon as possible.",
		},
		// 3. Местоположение.
		{
			match: func(q string) bool {
				if containsAny(q, "where", "location", "address", "find ikoha") {
					return true
				}
				return strings.Contains(q, "ikoha") && strings.Contains(q, "located")
			},
			response: "Ikoha is in Ovia South-West Local Government Area, Edo State, Nigeria (Iguobazuwa ward, South-South Nigeria).",
		},
		// 4. Новости.
		{
			match:    keywords("news", "update", "announcement"),
			response: "Check the News & Events page on this site for the latest news, announcements, and updates.",
		},
		// 5. События / календарь.
		{
			match:    keywords("event", "meeting", "calendar"),
			response: "Upcoming events and the community calendar are on the News & Events page. You can also register for events there.",
		},
		// 6. Минеральные ресурсы.
		{
			match:    keywords("mineral", "granite", "stone", "resource"),
			response: "Ikoha has mineral resources including granite, and agricultural resources like cocoa and palm oil. Visit the Minerals page on this site for more details.",
		},
		// 7. Сельское хозяйство.
		{
			match:    keywords("agriculture", "cocoa", "palm", "farm"),
			response: "Ikoha has rich agricultural resources including cocoa and palm oil. See the Minerals and Resources sections on this site for more.",
		},
		// 8. Форум.
		{
			match:    keywords("forum", "discuss", "talk", "join discussion"),
			response: "You can join community discussions on the Forum page. Create an account or browse threads there.",
		},
		// 9. Галерея.
		{
			match:    keywords("gallery", "photo", "picture", "image"),
			response: "Community photos and the gallery are on the Gallery page. You can view and share images there.",
		},
		// 10. Герои / лидеры / история.
		{
			match:    keywords("hero", "leader", "oba", "chairman", "history"),
			response: "Community leaders and heroes are featured on the Heroes page. Visit it to learn about Ikoha's history and leaders.",
		},
		// 11. Проекты.
		{
			match:    keywords("project", "development", "construction"),
			response: "Community development projects are listed on the Projects page. Check there for ongoing and planned initiatives.",
		},
		// 12. Бизнесы.
		{
			match:    keywords("business", "local business", "shop", "opportunit"),
			response: "Local businesses and opportunities are on the Businesses page. Visit it to explore what's available in the community.",
		},
		// 13. Население.
		{
			match:    keywords("population", "resident", "people", "how many"),
			response: "Ikoha has a growing population of residents. For official figures or details, you can contact the community via the Contact form or email.",
		},
		// 14. Приветствия.
		{
			match:    keywords("hello", "hi ", "hey", "good morning", "good afternoon", "good evening"),
			response: "Hello! I'm the Ikoha Community assistant. You can ask me about the festival, location, contact details, news, events, resources, forum, gallery, and more. How can I help?",
		},
		// 15. Помощь — тот же текст, что и ответ по умолчанию.
		{
			match:    keywords("help", "what can you", "what do you", "how can you"),
			response: SetupResponse,
		},
	}}
}

package constants

// Product content is kept in Brazilian Portuguese, matching the app the
// assistant and journal ship with.

// MotivationalMessages is the pool a daily message is drawn from when the
// user has not published one.
var MotivationalMessages = []string{
	"Cada dia é uma nova oportunidade para crescer e se desenvolver.",
	"Você é mais forte do que imagina e capaz de superar qualquer desafio.",
	"Pequenos passos todos os dias levam a grandes transformações.",
	"Sua jornada de bem-estar é única e valiosa.",
	"Lembre-se: cuidar de si mesmo não é egoísmo, é necessidade.",
}

// Assistant script lines.
const (
	BotGreeting = "Olá! Sou seu assistente de bem-estar. Posso te ajudar a encontrar o profissional ideal para você. Você está procurando apoio de um psicólogo ou um personal trainer?"

	BotPsychologistReply = "Ótima escolha! Um psicólogo pode te ajudar com questões emocionais, ansiedade, depressão e desenvolvimento pessoal. Gostaria que eu te conecte com nossos profissionais especializados ou prefere explorar nossos recursos de autoajuda primeiro?"

	BotTrainerReply = "Excelente! Um personal trainer pode te ajudar a criar uma rotina de exercícios personalizada e alcançar seus objetivos físicos. Que tal conhecer nosso AtlasFit Premium com os melhores treinos e dietas?"

	BotGenericReply = "Entendo. Posso te ajudar com ambas as áreas! Temos recursos tanto para saúde mental quanto física. Você gostaria de saber mais sobre nossos serviços de psicologia ou fitness?"

	BotClosingReply = "Obrigado pelo seu interesse! Nossa equipe entrará em contato em breve. Enquanto isso, explore nossos recursos disponíveis no aplicativo."
)

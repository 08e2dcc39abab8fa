package seeding

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/scoring"
	"github.com/vfg2006/bank-intelligence-api/pkg/utils"
)

// weightedOption é uma opção de sorteio com peso relativo
type weightedOption struct {
	value  string
	weight int
}

var occupations = []weightedOption{
	{"Engenheiro de Software", 12},
	{"Professor", 10},
	{"Médico", 6},
	{"Advogado", 7},
	{"Comerciante", 14},
	{"Autônomo", 16},
	{"Servidor Público", 11},
	{"Aposentado", 9},
	{"Estudante", 8},
	{"Empresário", 7},
}

// faixa de renda anual por ocupação, em reais
var incomeRanges = map[string][2]float64{
	"Engenheiro de Software": {80_000, 260_000},
	"Professor":              {35_000, 110_000},
	"Médico":                 {120_000, 480_000},
	"Advogado":               {60_000, 300_000},
	"Comerciante":            {30_000, 150_000},
	"Autônomo":               {18_000, 120_000},
	"Servidor Público":       {45_000, 180_000},
	"Aposentado":             {20_000, 90_000},
	"Estudante":              {8_000, 40_000},
	"Empresário":             {70_000, 500_000},
}

var regions = []weightedOption{
	{"Sudeste", 42},
	{"Nordeste", 22},
	{"Sul", 16},
	{"Centro-Oeste", 10},
	{"Norte", 10},
}

var ageBrackets = []weightedOption{
	{"18-25", 14},
	{"26-35", 28},
	{"36-45", 24},
	{"46-60", 22},
	{"60+", 12},
}

var kycStatuses = []weightedOption{
	{string(domain.KYCStatusVerified), 78},
	{string(domain.KYCStatusPending), 17},
	{string(domain.KYCStatusRejected), 5},
}

var firstNames = []string{
	"Ana", "Bruno", "Carla", "Daniel", "Eduarda", "Felipe", "Gabriela", "Henrique",
	"Isabela", "João", "Karina", "Lucas", "Mariana", "Nicolas", "Olívia", "Paulo",
	"Rafaela", "Sérgio", "Tatiane", "Vinícius",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Lima", "Pereira", "Costa", "Ferreira",
	"Almeida", "Nascimento", "Carvalho", "Ribeiro", "Gomes", "Martins", "Rocha",
}

var transactionCategories = map[domain.TransactionType][]string{
	domain.TransactionTypeDeposit:    {"salário", "rendimento", "depósito em espécie"},
	domain.TransactionTypeWithdrawal: {"saque caixa eletrônico", "saque agência"},
	domain.TransactionTypePayment:    {"supermercado", "serviços", "saúde", "educação", "lazer"},
	domain.TransactionTypeTransfer:   {"pix", "ted", "transferência entre contas"},
}

var transactionTypes = []weightedOption{
	{string(domain.TransactionTypePayment), 45},
	{string(domain.TransactionTypeTransfer), 28},
	{string(domain.TransactionTypeDeposit), 17},
	{string(domain.TransactionTypeWithdrawal), 10},
}

var interactionSubjects = []string{
	"Dúvida sobre fatura",
	"Solicitação de aumento de limite",
	"Contestação de cobrança",
	"Interesse em investimentos",
	"Atualização cadastral",
	"Reclamação de atendimento",
}

var interactionChannels = []domain.InteractionChannel{
	domain.InteractionChannelBranch,
	domain.InteractionChannelPhone,
	domain.InteractionChannelChat,
	domain.InteractionChannelEmail,
}

var sentiments = []weightedOption{
	{"positive", 35},
	{"neutral", 45},
	{"negative", 20},
}

// Generator produz registros sintéticos correlacionados. Com a mesma semente e
// o mesmo instante de referência, a saída é reproduzível
type Generator struct {
	rng  *rand.Rand
	now  time.Time
	seed int64
}

// NewGenerator cria um gerador a partir da semente informada.
// Semente zero usa o relógio, mantendo o comportamento de demo não reproduzível
func NewGenerator(seed int64, now time.Time) *Generator {
	if seed == 0 {
		seed = now.UnixNano()
		logrus.WithField("seed", seed).Info("Semente não informada, usando o relógio")
	}

	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		now:  now,
		seed: seed,
	}
}

// Seed retorna a semente efetivamente usada, útil para reproduzir uma carga
func (g *Generator) Seed() int64 {
	return g.seed
}

// alfabeto de nanoid, usado aqui com a fonte semeada para que os IDs também
// sejam reproduzíveis entre execuções com a mesma semente
const idAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const idLength = 21

func (g *Generator) nextID() string {
	id := make([]byte, idLength)
	for i := range id {
		id[i] = idAlphabet[g.rng.Intn(len(idAlphabet))]
	}

	return string(id)
}

// GenerateCustomers produz count clientes com atributos financeiros
// correlacionados entre si (renda → crédito → saldo → risco → CLV)
func (g *Generator) GenerateCustomers(count int) []*domain.Customer {
	customers := make([]*domain.Customer, 0, count)

	for i := 0; i < count; i++ {
		customerID := g.nextID()

		occupation := g.drawWeighted(occupations)
		incomeRange := incomeRanges[occupation]
		income := utils.RoundWithTwoDecimalPlace(incomeRange[0] + g.rng.Float64()*(incomeRange[1]-incomeRange[0]))

		accountAgeMonths := 1 + g.rng.Intn(120)
		openedAt := g.now.AddDate(0, -accountAgeMonths, 0)

		creditScore := g.creditScore(income)
		balance := g.accountBalance(income, creditScore)
		transactionCount := g.rng.Intn(60)

		customer := &domain.Customer{
			ID:               customerID,
			FullName:         g.fullName(),
			Occupation:       occupation,
			AgeBracket:       g.drawWeighted(ageBrackets),
			Region:           g.drawWeighted(regions),
			KYCStatus:        domain.KYCStatus(g.drawWeighted(kycStatuses)),
			AccountBalance:   balance,
			CreditScore:      creditScore,
			AnnualIncome:     income,
			TransactionCount: transactionCount,
			AccountOpenedAt:  openedAt,
		}

		customer.Email = fmt.Sprintf("cliente%d@example.com", i+1)
		customer.Phone = fmt.Sprintf("+55 11 9%04d-%04d", g.rng.Intn(10_000), g.rng.Intn(10_000))

		customer.RiskScore = g.riskScore(customer)
		customer.CustomerLifetimeValue = g.lifetimeValue(balance, income, accountAgeMonths)

		customers = append(customers, customer)
	}

	return customers
}

// creditScore = min(850, 580 + renda/1000) + ruído uniforme em [-50,+50],
// limitado a [300, 850]
func (g *Generator) creditScore(income float64) int {
	base := math.Min(850, 580+income/1_000)
	score := base + (g.rng.Float64()*100 - 50)

	return int(clamp(score, 300, 850))
}

// accountBalance parte de uma base ponderada por renda e crédito, aplica ruído
// de ±25% e nunca fica abaixo de 100
func (g *Generator) accountBalance(income float64, creditScore int) float64 {
	base := income * 0.25 * (float64(creditScore) / 850.0)
	balance := base * (0.75 + g.rng.Float64()*0.5)

	if balance < 100 {
		balance = 100
	}

	return utils.RoundWithTwoDecimalPlace(balance)
}

// riskScore usa o blend por regras acrescido de ruído uniforme em [-0.1,+0.1],
// limitado a [0,1]
func (g *Generator) riskScore(customer *domain.Customer) float64 {
	score := scoring.FallbackRiskScore(customer) + (g.rng.Float64()*0.2 - 0.1)

	return clamp(score, 0, 1)
}

// lifetimeValue = (saldo×0.001 + renda×0.0001) × 12 × min(5, idadeMeses/12) × U[2,5]
func (g *Generator) lifetimeValue(balance, income float64, accountAgeMonths int) float64 {
	yearsFactor := math.Min(5, float64(accountAgeMonths)/12.0)
	multiplier := 2 + g.rng.Float64()*3

	return utils.RoundWithTwoDecimalPlace((balance*0.001 + income*0.0001) * 12 * yearsFactor * multiplier)
}

// GenerateTransactions produz até maxPerCustomer transações por cliente, com
// valores proporcionais ao saldo e datas dentro da vida da conta
func (g *Generator) GenerateTransactions(customers []*domain.Customer, maxPerCustomer int) []*domain.Transaction {
	if maxPerCustomer <= 0 {
		return []*domain.Transaction{}
	}

	transactions := make([]*domain.Transaction, 0, len(customers)*maxPerCustomer/2)

	for _, customer := range customers {
		// coerente com o TransactionCount sorteado no cliente, até o teto da carga
		total := customer.TransactionCount
		if total > maxPerCustomer {
			total = maxPerCustomer
		}

		for i := 0; i < total; i++ {
			transactionType := domain.TransactionType(g.drawWeighted(transactionTypes))
			categories := transactionCategories[transactionType]

			transactions = append(transactions, &domain.Transaction{
				ID:         g.nextID(),
				CustomerID: customer.ID,
				Type:       transactionType,
				Amount:     g.transactionAmount(customer.AccountBalance, transactionType),
				Category:   categories[g.rng.Intn(len(categories))],
				OccurredAt: g.momentSince(customer.AccountOpenedAt),
			})
		}
	}

	return transactions
}

func (g *Generator) transactionAmount(balance float64, transactionType domain.TransactionType) float64 {
	ceiling := balance * 0.2
	if ceiling < 50 {
		ceiling = 50
	}

	amount := 5 + g.rng.Float64()*ceiling

	// depósitos tendem a ser maiores que gastos do dia a dia
	if transactionType == domain.TransactionTypeDeposit {
		amount *= 2
	}

	return utils.RoundWithTwoDecimalPlace(amount)
}

// GenerateInteractions produz até 5 interações de atendimento por cliente
func (g *Generator) GenerateInteractions(customers []*domain.Customer) []*domain.CustomerInteraction {
	interactions := make([]*domain.CustomerInteraction, 0, len(customers)*2)

	for _, customer := range customers {
		total := g.rng.Intn(6)

		for i := 0; i < total; i++ {
			interactions = append(interactions, &domain.CustomerInteraction{
				ID:         g.nextID(),
				CustomerID: customer.ID,
				Channel:    interactionChannels[g.rng.Intn(len(interactionChannels))],
				Subject:    interactionSubjects[g.rng.Intn(len(interactionSubjects))],
				Sentiment:  g.drawWeighted(sentiments),
				OccurredAt: g.momentSince(customer.AccountOpenedAt),
			})
		}
	}

	return interactions
}

// momentSince sorteia um instante entre since e o instante de referência
func (g *Generator) momentSince(since time.Time) time.Time {
	window := g.now.Sub(since)
	if window <= 0 {
		return g.now
	}

	return since.Add(time.Duration(g.rng.Int63n(int64(window))))
}

func (g *Generator) fullName() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

// drawWeighted sorteia uma opção proporcionalmente aos pesos
func (g *Generator) drawWeighted(options []weightedOption) string {
	total := 0
	for _, option := range options {
		total += option.weight
	}

	draw := g.rng.Intn(total)
	for _, option := range options {
		draw -= option.weight
		if draw < 0 {
			return option.value
		}
	}

	return options[len(options)-1].value
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package generator

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"currency-transactions/internal/config"
	"currency-transactions/internal/models"
)

// UnsupportedCurrency - код, которого нет в таблице курсов; такие комбинации пропускаются
const UnsupportedCurrency = "XXX"

var (
	// Фамилии длиннее восьми букв сокращаются до инициалов
	longSurnames  = []string{"Константинов", "Александров", "Преображенский", "Воскресенский", "Владимиров"}
	shortSurnames = []string{"Иванов", "Петров", "Сидоров", "Смирнов", "Козлов", "Попов"}
	givenNames    = []string{"Пётр", "Иван", "Алексей", "Сергей", "Дмитрий", "Андрей"}
	patronymics   = []string{"Сергеевич", "Иванович", "Петрович", "Алексеевич", "Андреевич"}

	currencies = []string{"RUB", "USD", "EUR", "CNY", UnsupportedCurrency}
)

// SourceGenerator безопасен для одновременного использования из нескольких горутин
type SourceGenerator struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewSourceGenerator() *SourceGenerator {
	return NewSourceGeneratorWithSeed(time.Now().UnixNano())
}

// NewSourceGeneratorWithSeed создаёт генератор с воспроизводимой последовательностью
func NewSourceGeneratorWithSeed(seed int64) *SourceGenerator {
	return &SourceGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// GenerateRecordSet генерирует клиентов, все известные валюты и суммы
func (g *SourceGenerator) GenerateRecordSet(clients, amounts int) *models.RecordSet {
	g.mu.Lock()
	defer g.mu.Unlock()

	records := &models.RecordSet{}

	for i := 0; i < clients; i++ {
		records.Identities = append(records.Identities, []string{g.name()})
	}
	for _, currency := range currencies {
		records.Currencies = append(records.Currencies, []string{currency})
	}
	for i := 0; i < amounts; i++ {
		records.Amounts = append(records.Amounts, []string{g.amount()})
	}

	return records
}

// GenerateName генерирует "Фамилия Имя Отчество"; примерно половина фамилий длинные
func (g *SourceGenerator) GenerateName() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.name()
}

// GenerateAmount генерирует сумму от 1 до 500 с копейками
func (g *SourceGenerator) GenerateAmount() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.amount()
}

func (g *SourceGenerator) name() string {
	surnames := shortSurnames
	if g.rand.Intn(2) == 0 {
		surnames = longSurnames
	}

	return fmt.Sprintf("%s %s %s",
		surnames[g.rand.Intn(len(surnames))],
		givenNames[g.rand.Intn(len(givenNames))],
		patronymics[g.rand.Intn(len(patronymics))],
	)
}

func (g *SourceGenerator) amount() string {
	cents := 100 + g.rand.Int63n(49901)
	return decimal.New(cents, -2).StringFixed(2)
}

// WriteFiles записывает три csv-файла в каталог источника под именами из конфигурации.
// Без имён файлы получают имена, которые при сортировке совпадают с порядком ролей.
func WriteFiles(cfg config.SourceConfig, records *models.RecordSet) error {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create source directory: %w", err)
	}

	names := [3]string{cfg.ClientsFile, cfg.CurrencyFile, cfg.VolumeFile}
	if names == ([3]string{}) {
		// Имена по умолчанию уже идут в порядке ролей при русской сортировке
		names = [3]string{"clients.csv", "currency.csv", "volume.csv"}
	}

	files := []struct {
		name string
		rows [][]string
	}{
		{names[0], records.Identities},
		{names[1], records.Currencies},
		{names[2], records.Amounts},
	}

	for _, file := range files {
		if err := writeCSV(filepath.Join(cfg.Dir, file.name), file.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

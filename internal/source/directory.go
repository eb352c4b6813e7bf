package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"currency-transactions/internal/config"
	"currency-transactions/internal/models"
)

const minSourceFiles = 3

// DirectoryProvider читает csv-файлы из каталога
type DirectoryProvider struct {
	dir          string
	clientsFile  string
	currencyFile string
	volumeFile   string
}

func NewDirectoryProvider(cfg *config.Config) *DirectoryProvider {
	return NewDirectoryProviderWithRoles(cfg.Source.Dir, cfg.Source.ClientsFile, cfg.Source.CurrencyFile, cfg.Source.VolumeFile)
}

// NewDirectoryProviderWithRoles задаёт имена файлов по ролям. Если все имена пустые,
// роли получают первые три файла в порядке русской сортировки.
func NewDirectoryProviderWithRoles(dir, clientsFile, currencyFile, volumeFile string) *DirectoryProvider {
	return &DirectoryProvider{
		dir:          dir,
		clientsFile:  clientsFile,
		currencyFile: currencyFile,
		volumeFile:   volumeFile,
	}
}

// ListFiles возвращает имена csv-файлов каталога в порядке русской локали
func (p *DirectoryProvider) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read source directory %s: %v", models.ErrInputSource, p.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}

	collate.New(language.Russian).SortStrings(names)
	return names, nil
}

// Load находит файлы по ролям и разбирает их строки
func (p *DirectoryProvider) Load(ctx context.Context) (*models.RecordSet, error) {
	names, err := p.ListFiles()
	if err != nil {
		return nil, err
	}
	if len(names) < minSourceFiles {
		return nil, fmt.Errorf("%w: expected at least %d csv files in %s, found %d", models.ErrInputSource, minSourceFiles, p.dir, len(names))
	}

	roles, err := p.assignRoles(names)
	if err != nil {
		return nil, err
	}

	log.Debug().Strs("files", names).Strs("roles", roles[:]).Msg("Source files found")

	var rows [3][][]string
	for i, name := range roles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows[i], err = ReadCSV(filepath.Join(p.dir, name))
		if err != nil {
			return nil, err
		}
	}

	return &models.RecordSet{
		Identities: rows[0],
		Currencies: rows[1],
		Amounts:    rows[2],
	}, nil
}

func (p *DirectoryProvider) assignRoles(names []string) ([3]string, error) {
	configured := [3]string{p.clientsFile, p.currencyFile, p.volumeFile}
	if configured == ([3]string{}) {
		return [3]string{names[0], names[1], names[2]}, nil
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}
	for _, name := range configured {
		if !present[name] {
			return configured, fmt.Errorf("%w: source file %q not found in %s", models.ErrInputSource, name, p.dir)
		}
	}
	return configured, nil
}

// ReadCSV читает все строки файла, допускает разное число полей в строках
func ReadCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", models.ErrInputSource, path, err)
	}
	defer file.Close()

	return parseCSV(file, path)
}

func parseCSV(r io.Reader, name string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", models.ErrInputSource, name, err)
	}

	// BOM, который оставляют табличные редакторы
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

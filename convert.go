package dwg

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cadkit/dwgread/errs"
	"github.com/cadkit/dwgread/format"
)

// converterPathEnv names the environment variable honored when no
// WithConverterPath option overrides it.
const converterPathEnv = "DWGREAD_CONVERTER"

func defaultConverterPath() string {
	return os.Getenv(converterPathEnv)
}

// downgrade invokes the external document-converter executable to rewrite
// an AC1027 input as AC1018, since the core decoder does not parse
// AC1027's section layout directly. Exit code 0 with an AC1018-magic file
// left in the output directory is success; anything else is
// errs.ErrConvertFailed. The converter's output becomes a new input to
// decode, not a format the core models beyond that.
func downgrade(path, converterPath string) ([]byte, error) {
	if converterPath == "" {
		return nil, errs.ErrConvertFailed
	}

	outDir, err := os.MkdirTemp("", "dwgread-convert-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(outDir)

	cmd := exec.Command(converterPath, path, outDir, "AC1018")
	if err := cmd.Run(); err != nil {
		return nil, errs.ErrConvertFailed
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, errs.ErrConvertFailed
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if filepath.Ext(ent.Name()) != ".dwg" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(outDir, ent.Name()))
		if err != nil {
			continue
		}
		if len(data) >= 6 && format.ParseVersion(data[:6]) == format.VersionAC1018 {
			return data, nil
		}
	}
	return nil, errs.ErrConvertFailed
}

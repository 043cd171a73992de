// Package locale resolves the UI locale and renders user-facing messages.
// Both supported locales make identical validation decisions; only the
// message text differs.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale identifies a supported message locale
type Locale string

const (
	EnUS Locale = "en-US"
	PtBR Locale = "pt-BR"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Match resolves an arbitrary BCP 47 tag (e.g. "pt", "pt-PT", "en-GB") to the
// closest supported locale. Unknown or empty tags fall back to en-US.
func Match(tag string) Locale {
	if tag == "" {
		return EnUS
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return EnUS
	}
	_, idx, _ := matcher.Match(parsed)
	if idx == 1 {
		return PtBR
	}
	return EnUS
}

// T renders the message for key in this locale, applying Sprintf args when
// given. Unknown keys render as the key itself so a missing translation is
// visible instead of silent.
func (l Locale) T(key string, args ...any) string {
	byLocale, ok := messages[key]
	if !ok {
		return key
	}
	msg, ok := byLocale[l]
	if !ok {
		msg = byLocale[EnUS]
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

var messages = map[string]map[Locale]string{
	"value.empty": {
		EnUS: "value cannot be empty",
		PtBR: "o valor não pode estar vazio",
	},
	"value.control_chars": {
		EnUS: "value contains control characters",
		PtBR: "o valor contém caracteres de controle",
	},
	"relative.absolute": {
		EnUS: "path must be relative to the game root, not absolute",
		PtBR: "o caminho deve ser relativo à raiz do jogo, não absoluto",
	},
	"relative.backslash": {
		EnUS: "use forward slashes (/), not backslashes",
		PtBR: "use barras (/), não barras invertidas",
	},
	"relative.double_slash": {
		EnUS: "path contains an empty segment (//)",
		PtBR: "o caminho contém um segmento vazio (//)",
	},
	"relative.dot_segment": {
		EnUS: "path segments \".\" and \"..\" are not allowed",
		PtBR: "segmentos \".\" e \"..\" não são permitidos no caminho",
	},
	"relative.bad_chars": {
		EnUS: "path segments cannot contain <>:\"|?*",
		PtBR: "segmentos do caminho não podem conter <>:\"|?*",
	},
	"relative.trailing_slash": {
		EnUS: "a file path cannot end with a slash",
		PtBR: "um caminho de arquivo não pode terminar com barra",
	},
	"windows.linux_like": {
		EnUS: "this looks like a Linux path; Windows paths start with a drive letter",
		PtBR: "isto parece um caminho Linux; caminhos Windows começam com letra de unidade",
	},
	"windows.root": {
		EnUS: "path must start with a drive letter (X:\\) or UNC prefix (\\\\server\\share)",
		PtBR: "o caminho deve começar com letra de unidade (X:\\) ou prefixo UNC (\\\\servidor\\pasta)",
	},
	"windows.bad_chars": {
		EnUS: "path cannot contain <>:\"|?* after the root",
		PtBR: "o caminho não pode conter <>:\"|?* após a raiz",
	},
	"linux.windows_like": {
		EnUS: "this looks like a Windows path; Linux paths use forward slashes",
		PtBR: "isto parece um caminho do Windows; caminhos Linux usam barras",
	},
	"linux.leading_slash": {
		EnUS: "path must start with /",
		PtBR: "o caminho deve começar com /",
	},
	"registry.path_shaped": {
		EnUS: "this looks like a filesystem path, not a registry path",
		PtBR: "isto parece um caminho de arquivos, não um caminho de registro",
	},
	"registry.hive": {
		EnUS: "path must start with a registry hive (HKCU, HKLM, HKCR, HKU, HKCC)",
		PtBR: "o caminho deve começar com uma raiz de registro (HKCU, HKLM, HKCR, HKU, HKCC)",
	},
	"registry.type": {
		EnUS: "unknown registry value type",
		PtBR: "tipo de valor de registro desconhecido",
	},
	"envvar.name": {
		EnUS: "name must start with a letter or underscore and contain only letters, digits and underscores",
		PtBR: "o nome deve começar com letra ou sublinhado e conter apenas letras, dígitos e sublinhados",
	},
	"envvar.reserved": {
		EnUS: "%s is reserved by the runtime and cannot be overridden",
		PtBR: "%s é reservada pelo runtime e não pode ser sobrescrita",
	},
	"dll.path_sep": {
		EnUS: "DLL name cannot contain path separators",
		PtBR: "o nome da DLL não pode conter separadores de caminho",
	},
	"dll.bad_chars": {
		EnUS: "DLL name can only contain letters, digits, dots, dashes and underscores",
		PtBR: "o nome da DLL só pode conter letras, dígitos, pontos, hífens e sublinhados",
	},
	"dll.mode": {
		EnUS: "unknown DLL override mode",
		PtBR: "modo de substituição de DLL desconhecido",
	},
	"drive.letter": {
		EnUS: "drive letter must be D through Y; Z is reserved",
		PtBR: "a letra da unidade deve estar entre D e Y; Z é reservada",
	},
	"folder.key": {
		EnUS: "unknown shell folder",
		PtBR: "pasta do sistema desconhecida",
	},
	"wrapper.windows_like": {
		EnUS: "wrapper executable cannot be a Windows path",
		PtBR: "o executável do wrapper não pode ser um caminho do Windows",
	},
	"wrapper.whitespace": {
		EnUS: "arguments go in the separate arguments field",
		PtBR: "argumentos vão no campo separado de argumentos",
	},
	"friendly.bad_chars": {
		EnUS: "name cannot contain <>:\"/\\|?*",
		PtBR: "o nome não pode conter <>:\"/\\|?*",
	},
	"friendly.trailing": {
		EnUS: "name cannot end with a space or a dot",
		PtBR: "o nome não pode terminar com espaço ou ponto",
	},
	"serial.format": {
		EnUS: "serial must be 1-16 hex digits, optionally prefixed with 0x",
		PtBR: "o serial deve ter de 1 a 16 dígitos hexadecimais, com prefixo 0x opcional",
	},
	"filename.reserved": {
		EnUS: "\".\" and \"..\" are not valid names",
		PtBR: "\".\" e \"..\" não são nomes válidos",
	},
	"filename.path_sep": {
		EnUS: "name cannot contain path separators",
		PtBR: "o nome não pode conter separadores de caminho",
	},
	"filename.bad_chars": {
		EnUS: "name cannot contain <>:\"|?* or control characters",
		PtBR: "o nome não pode conter <>:\"|?* ou caracteres de controle",
	},
	"backend.failed": {
		EnUS: "backend call failed: %s",
		PtBR: "falha na chamada ao backend: %s",
	},
	"status.duplicate": {
		EnUS: "an entry with this key already exists",
		PtBR: "já existe uma entrada com esta chave",
	},
	"status.imported": {
		EnUS: "imported %d entries (%d replaced, %d skipped)",
		PtBR: "%d entradas importadas (%d substituídas, %d ignoradas)",
	},
	"value.resolution": {
		EnUS: "resolution must look like 1920x1080",
		PtBR: "a resolução deve ter o formato 1920x1080",
	},
	"status.launch.ok": {
		EnUS: "test launch finished",
		PtBR: "teste de execução concluído",
	},
	"status.profile.created": {
		EnUS: "profile created",
		PtBR: "perfil criado",
	},
}

// Package catalog carries the built-in winetricks verb catalog used for
// search suggestions in the dependencies tab.
package catalog

import "strings"

// verbs is the known verb catalog, sorted. This mirrors the winetricks dll
// and font recipes most commonly needed by game profiles.
var verbs = []string{
	"allfonts",
	"amstream",
	"andale",
	"arial",
	"atmlib",
	"calibri",
	"cambria",
	"cjkfonts",
	"cnc_ddraw",
	"comctl32",
	"comctl32ocx",
	"comdlg32ocx",
	"consolas",
	"corefonts",
	"courier",
	"d3dcompiler_42",
	"d3dcompiler_43",
	"d3dcompiler_46",
	"d3dcompiler_47",
	"d3dx10",
	"d3dx10_43",
	"d3dx11_42",
	"d3dx11_43",
	"d3dx9",
	"d3dx9_24",
	"d3dx9_36",
	"d3dx9_43",
	"d3dxof",
	"dinput",
	"dinput8",
	"dirac",
	"directmusic",
	"directplay",
	"directshow",
	"dotnet20",
	"dotnet35",
	"dotnet40",
	"dotnet452",
	"dotnet462",
	"dotnet472",
	"dotnet48",
	"dotnet6",
	"dotnet7",
	"dotnet8",
	"dotnetdesktop6",
	"dsound",
	"dxdiag",
	"dxvk",
	"faudio",
	"ffdshow",
	"gdiplus",
	"georgia",
	"impact",
	"lavfilters",
	"liberation",
	"lucida",
	"mdac28",
	"mfc42",
	"mfc80",
	"mfc90",
	"mfc100",
	"mfc140",
	"msls31",
	"msvcrt40",
	"msxml3",
	"msxml4",
	"msxml6",
	"ole32",
	"openal",
	"physx",
	"quartz",
	"quicktime76",
	"tahoma",
	"times",
	"trebuchet",
	"uplay",
	"vb6run",
	"vcrun2003",
	"vcrun2005",
	"vcrun2008",
	"vcrun2010",
	"vcrun2012",
	"vcrun2013",
	"vcrun2015",
	"vcrun2017",
	"vcrun2019",
	"vcrun2022",
	"verdana",
	"webdings",
	"wingdings",
	"wmp9",
	"wmp10",
	"wmp11",
	"xact",
	"xact_x64",
	"xinput",
	"xna40",
}

// All returns the full catalog.
func All() []string {
	return append([]string(nil), verbs...)
}

// Search returns the verbs containing the query, case-insensitive. Queries
// shorter than two characters return no candidates, so a single keystroke
// does not flood the suggestion list.
func Search(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return nil
	}
	var matches []string
	for _, v := range verbs {
		if strings.Contains(strings.ToLower(v), q) {
			matches = append(matches, v)
		}
	}
	return matches
}

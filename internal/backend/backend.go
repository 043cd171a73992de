// Package backend is the typed client for the host-process backend. Every
// command takes a JSON {"input": ...} envelope and returns a typed response
// or an error; the backend's internal behavior is opaque to this tool.
package backend

import "lpm/internal/profile"

// Backend command names. These are fixed points of the host-process
// contract.
const (
	cmdImportRegistryFile   = "cmd_import_registry_file"
	cmdListChildDirectories = "cmd_list_child_directories"
	cmdListDirectoryEntries = "cmd_list_directory_entries"
	cmdPickExecutable       = "cmd_pick_executable"
	cmdPickGameRoot         = "cmd_pick_game_root"
	cmdExtractIcon          = "cmd_extract_icon"
	cmdHashFile             = "cmd_hash_file"
	cmdTestLaunch           = "cmd_test_launch"
	cmdCreateProfile        = "cmd_create_profile"
)

// RegistryImport is the result of importing a .reg file. Deduplication
// against the profile's existing keys happens client-side, in
// profile.MergeRegistryImport.
type RegistryImport struct {
	Entries  []profile.RegistryKey `json:"entries"`
	Warnings []string              `json:"warnings"`
}

// DirectoryList is the result of listing child directories.
type DirectoryList struct {
	Path        string   `json:"path"`
	Directories []string `json:"directories"`
}

// DirectoryEntries is the result of listing a directory's full contents.
type DirectoryEntries struct {
	Path        string   `json:"path"`
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
}

type pickResponse struct {
	Path string `json:"path"`
}

type iconResponse struct {
	IconPath string `json:"icon_path"`
}

type hashResponse struct {
	SHA256 string `json:"sha256"`
}

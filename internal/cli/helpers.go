package cli

import (
	"fmt"

	"github.com/aidanlsb/muninn/internal/config"
	"github.com/aidanlsb/muninn/internal/search"
)

// indexCache is shared across commands so repeated searches within a
// process reuse the same index build.
var indexCache = search.NewCache(0, nil)

// resolveVault loads the vault configuration for the resolved vault path
// and returns the fully resolved vault.
func resolveVault() (*config.Vault, error) {
	root := getVaultPath()
	if root == "" {
		return nil, fmt.Errorf("no vault resolved")
	}
	vc, err := config.LoadVaultConfig(root)
	if err != nil {
		return nil, fmt.Errorf("loading vault config: %w", err)
	}
	v, err := config.ResolveVault(root, vc)
	if err != nil {
		return nil, fmt.Errorf("resolving vault: %w", err)
	}
	return v, nil
}

package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid confere se o domínio do e-mail resolve no DNS.
// Não garante entregabilidade, só barra domínio inventado no cadastro.
func IsEmailDomainValid(email string) bool {
	domain := emailDomain(email)
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// domínio sem MX mas com A/AAAA ainda recebe e-mail
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

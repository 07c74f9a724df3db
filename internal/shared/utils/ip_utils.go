package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExtractClientIP returns the address used to key per-client limits.
//
// Forwarding headers are only honoured when the direct peer is a private or
// loopback address (a local reverse proxy); otherwise any client could pick
// its own key by sending X-Forwarded-For.
//
// Priority when behind a proxy:
// 1. X-Forwarded-For (first entry)
// 2. X-Real-IP
// 3. RemoteAddr
func ExtractClientIP(c *gin.Context) string {
	peer := remoteIP(c.Request.RemoteAddr)

	if peer == "" || IsPrivateIP(peer) {
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); isValidIP(ip) {
				return ip
			}
		}

		if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); isValidIP(xri) {
			return xri
		}
	}

	if peer != "" {
		return peer
	}

	return "127.0.0.1"
}

// remoteIP strips the port from "IP:port" or "[IPv6]:port"
func remoteIP(remoteAddr string) string {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		ip = remoteAddr
	}
	if !isValidIP(ip) {
		return ""
	}
	return ip
}

func isValidIP(ip string) bool {
	return ip != "" && net.ParseIP(ip) != nil
}

var privateIPBlocks = func() []*net.IPNet {
	cidrs := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"fc00::/7",
	}
	blocks := make([]*net.IPNet, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, block, err := net.ParseCIDR(cidr)
		if err == nil {
			blocks = append(blocks, block)
		}
	}
	return blocks
}()

// IsPrivateIP checks if an IP address is private or loopback
func IsPrivateIP(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}

	if parsed.IsLoopback() {
		return true
	}

	for _, block := range privateIPBlocks {
		if block.Contains(parsed) {
			return true
		}
	}

	return false
}

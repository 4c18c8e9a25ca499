package motd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcherald/mcherald/pkg/minecraft/motd"
)

func TestClean(t *testing.T) {
	tests := []struct {
		styled string
		want   string
	}{
		{`  Steve  `, `Steve`},
		{`no codes`, `no codes`},
		{`§aHello`, `Hello`},
		{`§AHELLO`, `HELLO`},
		{`§a§lHello§r world`, `Hello world`},
		{`§k§lobfuscated§r`, `obfuscated`},
		{`§7Welcome to §6the server§7!`, `Welcome to the server!`},
		{` §b§oA §dMinecraft §5Server `, `A Minecraft Server`},
		{`§`, `§`},
		{`§x§1§2`, `§x`},
		{`§f`, ``},
	}
	for _, tt := range tests {
		t.Run(tt.styled, func(t *testing.T) {
			got := motd.Clean(tt.styled)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToHTML(t *testing.T) {
	tests := []struct {
		styled string
		want   string
	}{
		{`plain`, `plain`},
		{`§lBold`, `<b>Bold</b>`},
		{`§l§lBold`, `<b>Bold</b>`},
		{`§lBold§r plain`, `<b>Bold</b> plain`},
		{`§nunder§oline`, `<u>under<i>line</i></u>`},
		{`§mgone§r!`, `<s>gone</s>!`},
		{`§cRed §lBold`, `Red <b>Bold</b>`},
		{`§lBold§cplain`, `<b>Bold</b>plain`},
		{`§kxyz§lBold`, `xyz<b>Bold</b>`},
		{`<script>§l&`, `&lt;script&gt;<b>&amp;</b>`},
		{`§x§lkept`, `§x<b>kept</b>`},
		{`§oitalic`, `<i>italic</i>`},
	}
	for _, tt := range tests {
		t.Run(tt.styled, func(t *testing.T) {
			got := motd.ToHTML(tt.styled)
			assert.Equal(t, tt.want, got)
		})
	}
}

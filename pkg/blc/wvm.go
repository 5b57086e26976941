package blc

// wvm is the interpreter variant used by the w target. It reads the same
// program encoding as vm.
const wvm = "" +
	"000000000001000100010001000100010001011111111100101000101100101111111000000101" +
	"100000000001011011111001111111011101011111111100001011101111111111100111111110" +
	"000000000000010001000100010101010101111111000000000110001000000011000001001011" +
	"111100000000101111111110010111111111111101111111111101111111111011111110111110" +
	"011111110000001000111100000000100010111100110110010111111111011010000001010101" +
	"010101011111100101011001000101111111111111111100000000101111100101111111111111" +
	"111111111111111111111000000101100000110110111011001011011111111111111111111111" +
	"111011111111111111110000001010111111111111101111101100101010111111111111111111" +
	"110111111111111111111010111111111011111111111111100001011001011111111111111111" +
	"111111111111110000110000010111001111111101111111111111011110011000000000010001" +
	"011111001101110010111111111111111011101001011111111111111010000001010111111100" +
	"101111111111111111111111111111110110111111110011111111111111111101001111111111" +
	"111011111111111111111100101100000010001010101011111111111111111111111111000001" +
	"001111001010111111111111101101111111111111111111111111101111101010000111111111" +
	"111111011101111111111111111111111111110111111001111111111110110010101011111111" +
	"111111111111101111111111111111011001111111111101011111100101010101010111111111" +
	"101001011111111111111111111110111111111111111101101111111111111111101111111111" +
	"111110111111101111111111111011111111111100101100000010101011111111111101100101" +
	"111111111111111111111111010101111000011111111111111011101111110010101111111111" +
	"101011011111100101010111111111111011111111110111111111010111111100111111111111" +
	"011100111111111111011000010101111111111101111111101000010110010111111111011111" +
	"110111111011100000010101011111111000000000010111100000000101111110000000010101" +
	"111111111101111111110110000001010111111111111101011110000111111111110000101101" +
	"111011001111111011110010110111011101101111111100000011110110111111100000100111" +
	"110000000000101111000000001011111100000000101010111100111111111110111111001111" +
	"111111101111101101111111001111101111110011011111111100111100000000000010111100" +
	"000000100010111111111000000001011111111001111111111110111100101111101101110010" +
	"110000010000010000101010111111111101011101111110000001011111110011111111000010" +
	"110111011001111111100001011011011100110110011100000000000000101111000000001111" +
	"110000001010101011111111111101111111111011111111101111010000001000100010001000" +
	"101010111101111011111100110000011001100000100101010111011111001011111100000100" +
	"000110011000001100110000010000001011111111111110100001011011101111110000001011" +
	"111111111001011110110100101111010110010111111111111011110010111110000010000011" +
	"001011011111011100110000000010111000000001111100000010001011111110010111101000" +
	"000011001011110000000101001011111111101111010000000111000010001110011010000111"

package blc

// vm is the BLC-encoded interpreter the program is applied to.
const vm = "" +
	"000000000001000100010001000100010001011111111100101000101100101111111000000101" +
	"100000000001011011111001111111011101011111111100101101111111111001111111000000" +
	"000000000010001000100010101010101111111000000000110001000000011000001001011111" +
	"100000000101010101011111111111111011111111111101111111111101111111111011101101" +
	"111111011111001111111000000100011110000000010101000000010111100110110010111111" +
	"111110110101101000000101010101010101111110010101100100010111111111111111110000" +
	"000010111110010111111111111111111111111111111111100000010110000011011011101100" +
	"101101111111111111111111111111101111111111111111000000101011111111111110111110" +
	"110010101010111111111111111111111011111111111111111110111111111111111111010111" +
	"111111011111111111111100001011001011111111111111111111111111111110000110000010" +
	"111001111111101111111111111011110011000000000010101000000010111100110110010111" +
	"111111111111110110101110110010111111111111110100000010101111111001011111111111" +
	"111111111111111111101101111111100111111111111111111010011111111111110111111111" +
	"111111111001011000000100010101010111111111111111111111111110000010011110010101" +
	"111111111111011011111111111111111111111111011111010100001111111111111110111011" +
	"111111111111111111111111101111110011111111111101100101010111111111111111111111" +
	"011111111111111111011001111111111101011111100101010101010101111111111010010111" +
	"111111111111111111101111111111111111101101111111111111111110111111111111111101" +
	"111111111111110111111101111111111111011111111111100101100000010101011111111111" +
	"101100101111111111111111111111111010101111000011111111111111011101111110010101" +
	"111111111101011011111100101010101111111111111011111111111011111111110111111111" +
	"010111111100111111111111011100111111111111011000010101111111111101111110100001" +
	"011001010111111111101111111101111111011111101110000001010101111111100000000001" +
	"011110000000010111111000000001010111111111110111111111011000000101011111111111" +
	"110101111000011111111111000010110111101100111111101111001011011101110110111111" +
	"110000001111011011111110000010011111000000000010111100000000101111110000000010" +
	"101011110011111111111011111100111111111110111110110111111100111110111111001101" +
	"111111110011110000000000001011110000000010001011111111100000000101111111100111" +
	"111111111011110010111110110111001011000001000001000010101011111111110101110111" +
	"111000000101111111001111111100001011011101100111111110000101101101110011011001" +
	"110000000000000010111100000000111111000000101010101111111111110111111111101111" +
	"111110111101000000100010001000100010001010101111011110111111100110000011001100" +
	"000100101010111011111101111001100000110011000001000000101111111111111101000010" +
	"110111011111110000001011111111111100101111011010010111101011001011111111111110" +
	"111110010111111000001000001100101110000010000011001011011111011100110000000010" +
	"111000000001111100000010001011111110010111101000000011001011110000000101001011" +
	"111111101111010000000111000010001110011010000111001101001000101111110100101111" +
	"11101000001000000101100000110110"

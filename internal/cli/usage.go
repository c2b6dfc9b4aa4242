package cli

import (
	"fmt"
	"io"
)

// Version is reported by --version.
const Version = "0.5.0"

// WriteUsage renders the help text for program to w.
func WriteUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [-h/--help] [--version] [--multi-cipher N] [-i <file>] [-o <file>] [-c <cipher>] [-k <key>] [--encrypt/--decrypt]\n\n", program)
	fmt.Fprint(w, `Encrypts/Decrypts input alphanumeric text using classical ciphers

Available options:

  -h|--help        Print this help message and exit

  --version        Print version information

  -i FILE          Read text to be processed from FILE
                   Stdin will be used if not supplied

  -o FILE          Write processed text to FILE
                   Stdout will be used if not supplied

  --multi-cipher N Specify the number of ciphers to be used in sequence
                   N should be a non-negative integer - defaults to 1

  -c CIPHER        Specify the cipher to be used to perform the encryption/decryption
                   CIPHER can be caesar, playfair, or vigenere
                   Repeat -c and -k once per cipher when using --multi-cipher

  -k KEY           Specify the cipher KEY
                   Give -c and -k together; with neither, an unkeyed caesar
                   cipher (no encryption) is used

  --encrypt        Will use the cipher to encrypt the input text (default behaviour)

  --decrypt        Will use the cipher to decrypt the input text
                   Ciphers are undone in reverse order

Other commands:

  ciphers          List the supported ciphers and their key rules
  history          Show recent runs (requires history.enabled in the config)
  config           Create or validate the configuration file
`)
}

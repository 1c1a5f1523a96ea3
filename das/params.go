// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package das

// Constants of the DAS protocol.
const (
	// HashLength length of blake2b-256 digests in bytes.
	HashLength = 32
	// AccountIDLength length of account ids in bytes.
	AccountIDLength = 20
	// AccountSuffix the suffix appended to every registered account.
	AccountSuffix = ".bit"

	// RateBase the denominator of parts-per rates in fee splits.
	RateBase uint64 = 10_000
	// OneCKB the smallest capacity unit of 1 CKB.
	OneCKB uint64 = 100_000_000
	// SecondsPerYear seconds of a non-leap year.
	SecondsPerYear uint64 = 365 * 86400

	// ApplyRegisterCellDataLength exact data length of an ApplyRegisterCell:
	// hash(32) || height_at_apply(8).
	ApplyRegisterCellDataLength = HashLength + 8
)

// Well-known code hashes. The values are fixed at deployment and every
// validator build carries them verbatim.
var (
	// AlwaysSuccessCodeHash code hash of the no-op lock required on ProposalCells.
	AlwaysSuccessCodeHash = MustParseHash("0x3419a1c09eb2567f6552ee7a8ecffd64155cffe0f1796e6e61ec088d740c1356")
	// DasLockCodeHash code hash of the das-lock guarding user owned cells.
	DasLockCodeHash = MustParseHash("0x9376c3b5811942960a846691e16e477cf43d7c7fa654067c9948dfcd09a32137")
	// DasWalletLockCodeHash code hash of the lock guarding protocol owned cells.
	DasWalletLockCodeHash = MustParseHash("0xd04f171e2080d96e2d4bf42b9b133f4a31d241e7b4868f62c3433b29e80e2a4a")

	// ConfigCellCodeHash code hash of the ConfigCell type script. The script
	// args carry the u32 LE config data type.
	ConfigCellCodeHash = MustParseHash("0x6ab6e95ef381923d9ec2a08f3d7cb6e6cfe8ec99c7c8e1d93f9e4f5a33b1f0dc")

	// HeightCellCodeHash type id of the oracle cell carrying the current block height.
	HeightCellCodeHash = MustParseHash("0x4d3bbbfa97673e942a1a6dcfa233b0c5a0b1c1e09ff34f4c579ae2a26e3e1d8a")
	// TimeCellCodeHash type id of the oracle cell carrying the current timestamp.
	TimeCellCodeHash = MustParseHash("0x2b2a50c9b07b7e3dbbcbd0e40fe5bdbd0e77b2f00c2eebc0a5e24f8d74b9c2b2")
	// QuoteCellCodeHash type id of the oracle cell carrying the CKB/USD quote.
	QuoteCellCodeHash = MustParseHash("0x0f1b5ff434f4ca2ae6a4b67b9c26b1c0d2c55f421b9c8c309f0b3a52e31b2d17")
)

// AlwaysSuccessLock returns the no-op lock script.
func AlwaysSuccessLock() Script {
	return Script{
		CodeHash: AlwaysSuccessCodeHash,
		HashType: HashTypeType,
	}
}

// DasLock returns the das-lock with the given args.
func DasLock(args []byte) Script {
	return Script{
		CodeHash: DasLockCodeHash,
		HashType: HashTypeType,
		Args:     args,
	}
}

// DasWalletLock returns the lock of the protocol wallet. Fee residuals
// always accrue to this lock.
func DasWalletLock() Script {
	return Script{
		CodeHash: DasWalletLockCodeHash,
		HashType: HashTypeType,
	}
}
